// Package repository defines the interfaces for the local state layer.
package repository

import (
	"context"

	"courierd/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAssignmentNotFound is returned when an assignment is not in the store.
var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentRepository is the authoritative-as-known set of delivery
// assignments held by the runtime. It has exactly two writers: the lifecycle
// controller (local writes after a successful server round trip) and the
// controller's remote-merge path (server-pushed events filtered through the
// monotonic progress guard). Reads return snapshot copies.
type AssignmentRepository interface {
	// Upsert stores or replaces the record for the assignment's id.
	Upsert(ctx context.Context, assignment *entity.DeliveryAssignment) error

	// FindByID retrieves a copy of the assignment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryAssignment, error)

	// List retrieves copies of all assignments, most urgent first.
	List(ctx context.Context) ([]*entity.DeliveryAssignment, error)

	// Remove deletes the assignment from the active set.
	Remove(ctx context.Context, id uuid.UUID) error

	// CountActive returns how many assignments are in an executing status
	// (assigned or picked_up).
	CountActive(ctx context.Context) (int, error)
}
