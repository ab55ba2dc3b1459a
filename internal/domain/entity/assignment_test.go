package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentStatus_CanAdvanceTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from AssignmentStatus
		to   AssignmentStatus
		want bool
	}{
		{name: "available to assigned", from: StatusAvailable, to: StatusAssigned, want: true},
		{name: "assigned to picked_up", from: StatusAssigned, to: StatusPickedUp, want: true},
		{name: "picked_up to delivered", from: StatusPickedUp, to: StatusDelivered, want: true},
		{name: "forward jump available to picked_up", from: StatusAvailable, to: StatusPickedUp, want: true},
		{name: "forward jump available to delivered", from: StatusAvailable, to: StatusDelivered, want: true},
		{name: "duplicate assigned", from: StatusAssigned, to: StatusAssigned, want: false},
		{name: "stale assigned after pickup", from: StatusPickedUp, to: StatusAssigned, want: false},
		{name: "stale available after accept", from: StatusAssigned, to: StatusAvailable, want: false},
		{name: "cancel from available", from: StatusAvailable, to: StatusCancelled, want: true},
		{name: "cancel from picked_up", from: StatusPickedUp, to: StatusCancelled, want: true},
		{name: "nothing after delivered", from: StatusDelivered, to: StatusCancelled, want: false},
		{name: "nothing after cancelled", from: StatusCancelled, to: StatusAssigned, want: false},
		{name: "unknown target", from: StatusAssigned, to: AssignmentStatus("lost"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}

func TestAssignmentStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, StatusAvailable.IsTerminal())
	assert.False(t, StatusAssigned.IsTerminal())
	assert.False(t, StatusPickedUp.IsTerminal())
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestDeliveryAssignment_MarkStatus_SetOnceTimestamps(t *testing.T) {
	t.Parallel()

	assignment := &DeliveryAssignment{Status: StatusAvailable}
	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := first.Add(10 * time.Minute)

	assignment.MarkStatus(StatusAssigned, first)
	require.NotNil(t, assignment.AssignedAt)
	assert.Equal(t, first, *assignment.AssignedAt)

	// A repeated application must not rewrite the original timestamp.
	assignment.MarkStatus(StatusAssigned, later)
	assert.Equal(t, first, *assignment.AssignedAt)

	assignment.MarkStatus(StatusPickedUp, later)
	require.NotNil(t, assignment.PickedUpAt)
	assert.Equal(t, later, *assignment.PickedUpAt)
	assert.Equal(t, StatusPickedUp, assignment.Status)
	assert.Nil(t, assignment.DeliveredAt)
}

func TestDeliveryAssignment_Clone_IsIndependent(t *testing.T) {
	t.Parallel()

	now := time.Now()
	original := &DeliveryAssignment{
		Status:     StatusAssigned,
		AssignedAt: &now,
	}

	clone := original.Clone()
	clone.Status = StatusPickedUp
	*clone.AssignedAt = now.Add(time.Hour)

	assert.Equal(t, StatusAssigned, original.Status)
	assert.Equal(t, now, *original.AssignedAt)
}

func TestDeliveryAssignment_IsActive(t *testing.T) {
	t.Parallel()

	assert.False(t, (&DeliveryAssignment{Status: StatusAvailable}).IsActive())
	assert.True(t, (&DeliveryAssignment{Status: StatusAssigned}).IsActive())
	assert.True(t, (&DeliveryAssignment{Status: StatusPickedUp}).IsActive())
	assert.False(t, (&DeliveryAssignment{Status: StatusDelivered}).IsActive())
	assert.False(t, (&DeliveryAssignment{Status: StatusCancelled}).IsActive())
}

func TestAssignmentPriority_Weight(t *testing.T) {
	t.Parallel()

	assert.Greater(t, PriorityUrgent.Weight(), PriorityHigh.Weight())
	assert.Greater(t, PriorityHigh.Weight(), PriorityNormal.Weight())
	assert.Greater(t, PriorityNormal.Weight(), PriorityLow.Weight())
}
