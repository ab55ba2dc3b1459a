package channel

import (
	"context"
	"net/http"
	"sync"
	"time"

	"courierd/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const writeWait = 10 * time.Second

// gorillaDialer opens websocket connections authenticated with the session
// bearer token.
type gorillaDialer struct {
	dialer *websocket.Dialer
}

// NewWebsocketDialer creates the production channel dialer.
func NewWebsocketDialer() service.ChannelDialer {
	return &gorillaDialer{
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
	}
}

// Dial opens the websocket with the bearer credential in the handshake.
func (d *gorillaDialer) Dial(ctx context.Context, url, bearerToken string) (service.ChannelConn, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+bearerToken)

	conn, resp, err := d.dialer.DialContext(ctx, url, header)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, errors.Wrap(err, "dial channel")
	}

	return &gorillaConn{conn: conn}, nil
}

// gorillaConn serializes writes: gorilla allows only one concurrent writer
// per connection, while Send is reached from the ping loop, the location
// sink and handler goroutines at once.
type gorillaConn struct {
	conn *websocket.Conn

	writeMu sync.Mutex
}

func (c *gorillaConn) ReadMessage() ([]byte, error) {
	_, data, err := c.conn.ReadMessage()

	return data, err
}

func (c *gorillaConn) WriteMessage(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.conn.WriteMessage(websocket.TextMessage, data))
}

func (c *gorillaConn) Close() error {
	// Best effort close handshake before tearing down the socket.
	deadline := time.Now().Add(time.Second)
	c.writeMu.Lock()
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	c.writeMu.Unlock()

	return errors.WithStack(c.conn.Close())
}
