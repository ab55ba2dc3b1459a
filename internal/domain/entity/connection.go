// Package entity contains the core business objects of the project.
package entity

import "time"

// ConnectionPhase represents the state of the persistent server channel.
type ConnectionPhase string

const (
	PhaseDisconnected ConnectionPhase = "disconnected"
	PhaseConnecting   ConnectionPhase = "connecting"
	PhaseConnected    ConnectionPhase = "connected"
	PhaseReconnecting ConnectionPhase = "reconnecting"
	PhaseFailed       ConnectionPhase = "failed"
)

// String returns the string representation of the ConnectionPhase.
func (p ConnectionPhase) String() string {
	return string(p)
}

// ConnectionState is a snapshot of the persistent channel.
//
// PhaseFailed is reached only after ReconnectAttempts has hit the configured
// maximum; the only way out of it is a fresh explicit connect.
type ConnectionState struct {
	Phase             ConnectionPhase `json:"phase"`
	ReconnectAttempts int             `json:"reconnect_attempts"`
	ConnectedAt       *time.Time      `json:"connected_at,omitempty"`
	LastError         string          `json:"last_error,omitempty"`
}

// CourierStatus is the courier's own availability announced to dispatch.
type CourierStatus string

const (
	CourierOnline  CourierStatus = "online"
	CourierBusy    CourierStatus = "busy"
	CourierOffline CourierStatus = "offline"
)

// IsValid checks if the CourierStatus is a valid value.
func (s CourierStatus) IsValid() bool {
	switch s {
	case CourierOnline, CourierBusy, CourierOffline:
		return true
	default:
		return false
	}
}
