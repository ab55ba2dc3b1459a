// Package channel owns the persistent bidirectional connection to the
// dispatch server: connect, reconnect, forced disconnect, best-effort sends
// and fan-out of server-pushed events.
package channel

import (
	"encoding/json"

	"courierd/internal/domain/service"

	"github.com/pkg/errors"
)

// sessionAck is sent by the server once it has authenticated and bound the
// session. Connect does not resolve until it arrives.
const kindSessionAck service.MessageKind = "session_ack"

// envelope is the top-level frame on the channel.
type envelope struct {
	Type    service.MessageKind `json:"type"`
	Payload json.RawMessage     `json:"payload,omitempty"`
}

func encodeFrame(kind service.MessageKind, payload any) ([]byte, error) {
	frame := envelope{Type: kind}

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s payload", kind)
		}
		frame.Payload = encoded
	}

	data, err := json.Marshal(frame)
	if err != nil {
		return nil, errors.Wrap(err, "encode frame")
	}

	return data, nil
}

func decodeFrame(data []byte) (*envelope, error) {
	var frame envelope
	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, errors.Wrap(err, "decode frame")
	}
	if frame.Type == "" {
		return nil, errors.New("frame has no type")
	}

	return &frame, nil
}
