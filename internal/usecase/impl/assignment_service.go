// Package impl contains the use case implementations of the courier runtime.
package impl

import (
	"context"
	"log/slog"
	"time"

	"courierd/internal/domain/entity"
	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/repository"
	"courierd/internal/domain/service"
	"courierd/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

type assignmentService struct {
	repo     repository.AssignmentRepository
	backend  service.AssignmentBackend
	tracking usecase.TrackingUsecase
	channel  service.Channel
	logger   *slog.Logger
	now      func() time.Time
}

// NewAssignmentService creates the assignment lifecycle controller.
func NewAssignmentService(
	repo repository.AssignmentRepository,
	backend service.AssignmentBackend,
	tracking usecase.TrackingUsecase,
	channel service.Channel,
	logger *slog.Logger,
) usecase.AssignmentUsecase {
	return &assignmentService{
		repo:     repo,
		backend:  backend,
		tracking: tracking,
		channel:  channel,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns snapshots of the active set, annotated with distances from
// the last known position when tracking has one.
func (srv *assignmentService) List(ctx context.Context) ([]*usecase.AssignmentSnapshot, error) {
	assignments, err := srv.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list assignments")
	}

	var lastSample *entity.LocationSample
	if srv.tracking != nil {
		lastSample = srv.tracking.Status().LastSample
	}

	snapshots := make([]*usecase.AssignmentSnapshot, 0, len(assignments))
	for _, assignment := range assignments {
		snapshot := &usecase.AssignmentSnapshot{DeliveryAssignment: assignment}
		if lastSample != nil {
			pickup := geo.DistanceHaversine(lastSample.Point(), pointOf(assignment.Pickup))
			dropoff := geo.DistanceHaversine(lastSample.Point(), pointOf(assignment.Dropoff))
			snapshot.DistanceToPickupM = &pickup
			snapshot.DistanceToDropoffM = &dropoff
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

// Accept claims an available assignment. Local state moves to assigned only
// after the server acknowledged the claim; a Conflict or NotFound response
// means another courier won the race and the local record is dropped.
func (srv *assignmentService) Accept(ctx context.Context, id uuid.UUID) (*entity.DeliveryAssignment, error) {
	current, err := srv.requireStatus(ctx, id, entity.StatusAvailable, entity.StatusAssigned)
	if err != nil || current != nil {
		return current, err
	}

	updated, err := srv.backend.Accept(ctx, id)
	if err != nil {
		return nil, srv.handleTransitionFailure(ctx, id, "accept", err)
	}

	return srv.commit(ctx, id, updated, entity.StatusAssigned)
}

// ConfirmPickup marks an assigned delivery as collected. No secret is
// required; pickup is confirmed by the courier's own action.
func (srv *assignmentService) ConfirmPickup(ctx context.Context, id uuid.UUID, notes string) (*entity.DeliveryAssignment, error) {
	current, err := srv.requireStatus(ctx, id, entity.StatusAssigned, entity.StatusPickedUp)
	if err != nil || current != nil {
		return current, err
	}

	updated, err := srv.backend.ConfirmPickup(ctx, id, notes)
	if err != nil {
		return nil, srv.handleTransitionFailure(ctx, id, "pickup", err)
	}

	return srv.commit(ctx, id, updated, entity.StatusPickedUp)
}

// ConfirmDelivery submits the recipient's code for server-side verification.
// State never advances before the acknowledgment, and a rejected code leaves
// the assignment at picked_up so the caller can retry with a new entry.
func (srv *assignmentService) ConfirmDelivery(ctx context.Context, id uuid.UUID, code, notes string) (*entity.DeliveryAssignment, error) {
	current, err := srv.requireStatus(ctx, id, entity.StatusPickedUp, entity.StatusDelivered)
	if err != nil || current != nil {
		return current, err
	}

	updated, err := srv.backend.ConfirmDelivery(ctx, id, code, notes)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidConfirmation) {
			srv.logger.Info("Confirmation code rejected",
				slog.String("assignment_id", id.String()),
			)

			return nil, err
		}

		return nil, srv.handleTransitionFailure(ctx, id, "deliver", err)
	}

	return srv.commit(ctx, id, updated, entity.StatusDelivered)
}

// Cancel withdraws from an assignment; valid from any non-terminal status.
func (srv *assignmentService) Cancel(ctx context.Context, id uuid.UUID, reason string) (*entity.DeliveryAssignment, error) {
	record, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.notFound(err)
	}
	if record.Status == entity.StatusCancelled {
		return record, nil
	}
	if record.Status.IsTerminal() {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"cannot cancel a " + record.Status.String() + " delivery")
	}

	updated, err := srv.backend.Cancel(ctx, id, reason)
	if err != nil {
		return nil, srv.handleTransitionFailure(ctx, id, "cancel", err)
	}

	return srv.commit(ctx, id, updated, entity.StatusCancelled)
}

// Ack removes a terminal assignment from the active set.
func (srv *assignmentService) Ack(ctx context.Context, id uuid.UUID) error {
	record, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return srv.notFound(err)
	}
	if !record.Status.IsTerminal() {
		return domainerrors.ErrInvalidTransition.WithDetails("only delivered or cancelled assignments can be acknowledged")
	}

	return errors.Wrap(srv.repo.Remove(ctx, id), "remove acknowledged assignment")
}

// Refresh re-fetches one record from the source of truth, removing it
// locally when the server no longer knows it.
func (srv *assignmentService) Refresh(ctx context.Context, id uuid.UUID) (*entity.DeliveryAssignment, error) {
	fetched, err := srv.backend.FetchAssignment(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			if removeErr := srv.repo.Remove(ctx, id); removeErr != nil && !errors.Is(removeErr, repository.ErrAssignmentNotFound) {
				return nil, errors.Wrap(removeErr, "remove vanished assignment")
			}
		}

		return nil, err
	}

	if err := srv.repo.Upsert(ctx, fetched); err != nil {
		return nil, errors.Wrap(err, "store refreshed assignment")
	}

	return fetched, nil
}

// Bootstrap replaces the active set with the server's view.
func (srv *assignmentService) Bootstrap(ctx context.Context) error {
	assignments, err := srv.backend.FetchAssignments(ctx)
	if err != nil {
		return err
	}

	existing, err := srv.repo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list existing assignments")
	}

	fetched := make(map[uuid.UUID]struct{}, len(assignments))
	for _, assignment := range assignments {
		fetched[assignment.ID] = struct{}{}
		if err := srv.repo.Upsert(ctx, assignment); err != nil {
			return errors.Wrap(err, "store assignment")
		}
	}
	for _, record := range existing {
		if _, ok := fetched[record.ID]; !ok {
			if err := srv.repo.Remove(ctx, record.ID); err != nil && !errors.Is(err, repository.ErrAssignmentNotFound) {
				return errors.Wrap(err, "drop stale assignment")
			}
		}
	}

	srv.logger.Info("Assignment set bootstrapped", slog.Int("count", len(assignments)))

	return nil
}

// IngestAssignment merges a server-pushed new assignment. Known ids go
// through the monotonic guard instead of a blind overwrite.
func (srv *assignmentService) IngestAssignment(ctx context.Context, assignment *entity.DeliveryAssignment) error {
	if assignment == nil || assignment.ID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("pushed assignment has no id")
	}

	existing, err := srv.repo.FindByID(ctx, assignment.ID)
	if err == nil {
		return srv.ApplyRemoteUpdate(ctx, existing.ID, assignment.Status)
	}
	if !errors.Is(err, repository.ErrAssignmentNotFound) {
		return errors.Wrap(err, "look up pushed assignment")
	}

	srv.logger.Info("New assignment pushed",
		slog.String("assignment_id", assignment.ID.String()),
		slog.String("priority", string(assignment.Priority)),
	)

	return errors.Wrap(srv.repo.Upsert(ctx, assignment), "store pushed assignment")
}

// ApplyRemoteUpdate merges a server-pushed status change. The update is
// applied only when the reported status is reachable forward from the local
// one; duplicates and stale reports are logged and discarded, which makes
// the operation idempotent under transport reordering.
func (srv *assignmentService) ApplyRemoteUpdate(ctx context.Context, id uuid.UUID, status entity.AssignmentStatus) error {
	record, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			srv.logger.Debug("Remote update for unknown assignment discarded",
				slog.String("assignment_id", id.String()),
				slog.String("status", status.String()),
			)

			return nil
		}

		return errors.Wrap(err, "look up assignment")
	}

	if !record.Status.CanAdvanceTo(status) {
		srv.logger.Info("Remote update discarded by progress guard",
			slog.String("assignment_id", id.String()),
			slog.String("local_status", record.Status.String()),
			slog.String("remote_status", status.String()),
		)

		return nil
	}

	record.MarkStatus(status, srv.now())

	return errors.Wrap(srv.repo.Upsert(ctx, record), "store remote update")
}

// requireStatus loads the record and validates the precondition. It returns
// (record, nil) when the record already carries the target status, making
// repeated identical calls no-ops.
func (srv *assignmentService) requireStatus(ctx context.Context, id uuid.UUID, want, target entity.AssignmentStatus) (*entity.DeliveryAssignment, error) {
	record, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.notFound(err)
	}

	if record.Status == target {
		return record, nil
	}
	if record.Status != want {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"delivery is " + record.Status.String() + ", expected " + want.String())
	}

	return nil, nil
}

// commit stores the server-acknowledged record. The server's copy wins when
// present; otherwise the local record is advanced to the target status.
func (srv *assignmentService) commit(ctx context.Context, id uuid.UUID, updated *entity.DeliveryAssignment, target entity.AssignmentStatus) (*entity.DeliveryAssignment, error) {
	record := updated
	if record == nil || record.ID == uuid.Nil {
		local, err := srv.repo.FindByID(ctx, id)
		if err != nil {
			return nil, srv.notFound(err)
		}
		record = local
	}

	record.MarkStatus(target, srv.now())

	if err := srv.repo.Upsert(ctx, record); err != nil {
		return nil, errors.Wrap(err, "store assignment")
	}

	srv.logger.Info("Assignment transitioned",
		slog.String("assignment_id", id.String()),
		slog.String("status", target.String()),
	)

	// Best-effort progress announcement; the backend call above is the
	// authoritative record, so a down channel is not an error here.
	if srv.channel != nil {
		_ = srv.channel.Send(service.MessageAssignmentStatus, service.AssignmentUpdateEvent{
			AssignmentID: record.ID,
			Status:       record.Status,
		})
	}

	return record, nil
}

// handleTransitionFailure keeps the prior local state on retryable errors
// and forces a refresh from the source of truth on Conflict/NotFound instead
// of a blind retry.
func (srv *assignmentService) handleTransitionFailure(ctx context.Context, id uuid.UUID, op string, err error) error {
	switch {
	case errors.Is(err, domainerrors.ErrConflict), errors.Is(err, domainerrors.ErrNotFound):
		srv.logger.Warn("Assignment changed elsewhere, refreshing",
			slog.String("assignment_id", id.String()),
			slog.String("operation", op),
			slog.Any("error", err),
		)
		if _, refreshErr := srv.Refresh(ctx, id); refreshErr != nil && !errors.Is(refreshErr, domainerrors.ErrNotFound) {
			srv.logger.Warn("Refresh after conflict failed",
				slog.String("assignment_id", id.String()),
				slog.Any("error", refreshErr),
			)
		}

		return err

	default:
		// Transient failure: the local record stays in its prior state and
		// the caller may retry.
		return err
	}
}

func (srv *assignmentService) notFound(err error) error {
	if errors.Is(err, repository.ErrAssignmentNotFound) {
		return domainerrors.ErrNotFound
	}

	return err
}

func pointOf(stop entity.Stop) orb.Point {
	return orb.Point{stop.Longitude, stop.Latitude}
}
