// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus represents the lifecycle state of a delivery assignment.
type AssignmentStatus string

const (
	// StatusAvailable indicates the assignment is offered but not yet claimed.
	StatusAvailable AssignmentStatus = "available"
	// StatusAssigned indicates the courier has accepted the assignment.
	StatusAssigned AssignmentStatus = "assigned"
	// StatusPickedUp indicates the courier has collected the package.
	StatusPickedUp AssignmentStatus = "picked_up"
	// StatusDelivered indicates the delivery was confirmed by the recipient's code.
	StatusDelivered AssignmentStatus = "delivered"
	// StatusCancelled indicates the assignment was cancelled before completion.
	StatusCancelled AssignmentStatus = "cancelled"
)

// String returns the string representation of the AssignmentStatus.
func (s AssignmentStatus) String() string {
	return string(s)
}

// IsValid checks if the AssignmentStatus is a valid value.
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusPickedUp, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s AssignmentStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Rank returns the position of the status in the forward-progress ordering.
// Cancelled has no rank; it is reachable from any non-terminal status.
func (s AssignmentStatus) Rank() int {
	switch s {
	case StatusAvailable:
		return 0
	case StatusAssigned:
		return 1
	case StatusPickedUp:
		return 2
	case StatusDelivered:
		return 3
	default:
		return -1
	}
}

// CanAdvanceTo reports whether a remotely reported status may replace s.
// Progress only moves forward along available -> assigned -> picked_up ->
// delivered; cancelled is reachable from any non-terminal status. Duplicate
// and stale statuses are not advances.
func (s AssignmentStatus) CanAdvanceTo(next AssignmentStatus) bool {
	if !next.IsValid() || s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}

	return next.Rank() > s.Rank()
}

// AssignmentPriority is an advisory urgency hint. It never gates transitions.
type AssignmentPriority string

const (
	PriorityLow    AssignmentPriority = "low"
	PriorityNormal AssignmentPriority = "normal"
	PriorityHigh   AssignmentPriority = "high"
	PriorityUrgent AssignmentPriority = "urgent"
)

// Weight returns a sortable weight for the priority, higher is more urgent.
func (p AssignmentPriority) Weight() int {
	switch p {
	case PriorityUrgent:
		return 3
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 1
	default:
		return 0
	}
}

// Stop describes one endpoint of a delivery: an address, its coordinates and
// free-text instructions for the courier.
type Stop struct {
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Instructions string  `json:"instructions,omitempty"`
}

// DeliveryAssignment represents one delivery task assigned to a courier,
// tracked through a fixed lifecycle.
type DeliveryAssignment struct {
	ID uuid.UUID `json:"id"` // The unique identifier of the assignment.

	// ConfirmationCode is the short shared secret known to the recipient.
	// It is verified exclusively server-side and never derived locally.
	ConfirmationCode string `json:"confirmation_code,omitempty"`

	Status   AssignmentStatus   `json:"status"`
	Priority AssignmentPriority `json:"priority"`

	Pickup  Stop `json:"pickup_location"`
	Dropoff Stop `json:"delivery_location"`

	// TotalEarning is immutable once the assignment is accepted.
	TotalEarning float64 `json:"total_earning"`

	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// IsActive reports whether the assignment is currently being executed by the
// courier, which drives the high-urgency location sampling interval.
func (a *DeliveryAssignment) IsActive() bool {
	return a.Status == StatusAssigned || a.Status == StatusPickedUp
}

// MarkStatus moves the assignment to the given status and stamps the
// corresponding set-once timestamp. Timestamps already set are preserved, so
// repeated applications never rewrite history.
func (a *DeliveryAssignment) MarkStatus(status AssignmentStatus, now time.Time) {
	a.Status = status

	switch status {
	case StatusAssigned:
		if a.AssignedAt == nil {
			a.AssignedAt = &now
		}
	case StatusPickedUp:
		if a.PickedUpAt == nil {
			a.PickedUpAt = &now
		}
	case StatusDelivered:
		if a.DeliveredAt == nil {
			a.DeliveredAt = &now
		}
	}
}

// Clone returns a deep copy of the assignment so callers can hand out
// snapshots without exposing the stored record to mutation.
func (a *DeliveryAssignment) Clone() *DeliveryAssignment {
	clone := *a
	clone.AssignedAt = cloneTime(a.AssignedAt)
	clone.PickedUpAt = cloneTime(a.PickedUpAt)
	clone.DeliveredAt = cloneTime(a.DeliveredAt)

	return &clone
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t

	return &copied
}
