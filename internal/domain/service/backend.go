// Package service defines interfaces for external collaborators of the
// courier runtime.
package service

import (
	"context"

	"courierd/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignmentBackend is the request/response surface of the dispatch server.
// Every call is a single authoritative round trip; implementations map
// transport failures to the domain error taxonomy (Conflict, NotFound,
// InvalidConfirmation, Timeout, Authentication).
type AssignmentBackend interface {
	// FetchAssignments returns the server's current view of the courier's
	// assignments, used for bootstrap and forced refreshes.
	FetchAssignments(ctx context.Context) ([]*entity.DeliveryAssignment, error)

	// FetchAssignment returns the server's record for one assignment.
	FetchAssignment(ctx context.Context, id uuid.UUID) (*entity.DeliveryAssignment, error)

	// Accept claims an available assignment for this courier.
	Accept(ctx context.Context, id uuid.UUID) (*entity.DeliveryAssignment, error)

	// ConfirmPickup reports the package as collected.
	ConfirmPickup(ctx context.Context, id uuid.UUID, notes string) (*entity.DeliveryAssignment, error)

	// ConfirmDelivery submits the recipient's confirmation code for
	// server-side verification. The code is never validated locally.
	ConfirmDelivery(ctx context.Context, id uuid.UUID, code, notes string) (*entity.DeliveryAssignment, error)

	// Cancel withdraws from an assignment with a reason.
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*entity.DeliveryAssignment, error)
}
