// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"courierd/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignmentSnapshot is a read-only view of one assignment for the caller
// layer, annotated with straight-line distances from the courier's last known
// position when one exists.
type AssignmentSnapshot struct {
	*entity.DeliveryAssignment

	DistanceToPickupM  *float64 `json:"distance_to_pickup_m,omitempty"`
	DistanceToDropoffM *float64 `json:"distance_to_dropoff_m,omitempty"`
}

// AssignmentUsecase is the delivery assignment lifecycle: it validates
// requested transitions, runs the authoritative server round trip, and only
// then mutates local state. Every operation is idempotent against repeated
// identical calls.
type AssignmentUsecase interface {
	// List returns snapshots of the active set, most urgent first.
	List(ctx context.Context) ([]*AssignmentSnapshot, error)

	// Accept claims an available assignment.
	Accept(ctx context.Context, id uuid.UUID) (*entity.DeliveryAssignment, error)

	// ConfirmPickup marks an assigned delivery as collected.
	ConfirmPickup(ctx context.Context, id uuid.UUID, notes string) (*entity.DeliveryAssignment, error)

	// ConfirmDelivery finalizes a picked-up delivery with the recipient's
	// code. The code is verified server-side only.
	ConfirmDelivery(ctx context.Context, id uuid.UUID, code, notes string) (*entity.DeliveryAssignment, error)

	// Cancel withdraws from a non-terminal assignment.
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*entity.DeliveryAssignment, error)

	// Ack removes a terminal (delivered or cancelled) assignment from the
	// active set once the caller layer has displayed the outcome.
	Ack(ctx context.Context, id uuid.UUID) error

	// Refresh re-fetches one record from the source of truth.
	Refresh(ctx context.Context, id uuid.UUID) (*entity.DeliveryAssignment, error)

	// Bootstrap replaces the active set with the server's view.
	Bootstrap(ctx context.Context) error

	// IngestAssignment merges a server-pushed new assignment.
	IngestAssignment(ctx context.Context, assignment *entity.DeliveryAssignment) error

	// ApplyRemoteUpdate merges a server-pushed status change, guarded so
	// progress never moves backward and duplicates are discarded.
	ApplyRemoteUpdate(ctx context.Context, id uuid.UUID, status entity.AssignmentStatus) error
}
