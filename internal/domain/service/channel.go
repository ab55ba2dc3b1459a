package service

import (
	"context"

	"courierd/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageKind identifies a frame on the persistent channel.
type MessageKind string

const (
	// Inbound kinds pushed by the server.
	MessageNewAssignment    MessageKind = "new_assignment"
	MessageAssignmentUpdate MessageKind = "assignment_update"
	MessageNotification     MessageKind = "notification"

	// Outbound kinds sent by the runtime.
	MessageLocationUpdate   MessageKind = "location_update"
	MessageStatusChange     MessageKind = "status_change"
	MessageAssignmentStatus MessageKind = "assignment_status"
	MessagePing             MessageKind = "ping"
)

// AssignmentUpdateEvent is the payload of an assignment_update push.
type AssignmentUpdateEvent struct {
	AssignmentID uuid.UUID               `json:"assignment_id"`
	Status       entity.AssignmentStatus `json:"status"`
}

// NotificationEvent is an out-of-band message for the caller layer.
type NotificationEvent struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority string `json:"priority,omitempty"`
}

// Unsubscribe removes a previously registered listener. Safe to call more
// than once.
type Unsubscribe func()

// Channel is the single persistent, authenticated, bidirectional connection
// to the dispatch server.
//
// Connect is idempotent; when the channel is already up it returns
// immediately. Send is best-effort and silently no-ops while disconnected:
// callers that need delivery guarantees must check IsConnected first. The
// channel is never relied upon for assignment-state correctness, only for
// location pushes, liveness pings and server-pushed events.
type Channel interface {
	Connect(ctx context.Context) error
	Disconnect()
	IsConnected() bool
	State() entity.ConnectionState

	// Send marshals payload into a frame of the given kind. It returns nil
	// without sending when the channel is down.
	Send(kind MessageKind, payload any) error

	// Listener registration. Each returned Unsubscribe deterministically
	// removes exactly the listener it was created for.
	OnNewAssignment(fn func(*entity.DeliveryAssignment)) Unsubscribe
	OnAssignmentUpdate(fn func(*AssignmentUpdateEvent)) Unsubscribe
	OnNotification(fn func(*NotificationEvent)) Unsubscribe
	OnPhaseChange(fn func(entity.ConnectionState)) Unsubscribe

	// OnForcedLogout fires when the server terminates the session for good
	// (credential revoked). Credentials are already cleared when it fires and
	// no reconnect is attempted.
	OnForcedLogout(fn func()) Unsubscribe
}

// ChannelConn is one live transport connection.
type ChannelConn interface {
	ReadMessage() ([]byte, error)
	WriteMessage(data []byte) error
	Close() error
}

// ChannelDialer opens transport connections; injected so the reconnection
// state machine is testable with a fake transport.
type ChannelDialer interface {
	Dial(ctx context.Context, url, bearerToken string) (ChannelConn, error)
}
