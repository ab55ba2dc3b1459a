package impl

import (
	"context"
	"testing"

	"courierd/internal/domain/entity"
	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignmentService_Accept_ConflictRemovesLocalRecord(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id).Return(availableAssignment(id), nil)
	fx.backend.EXPECT().Accept(ctx, id).Return(nil, domainerrors.ErrConflict)
	// The conflict triggers a refresh; the server no longer knows the
	// assignment, so the local record is dropped.
	fx.backend.EXPECT().FetchAssignment(ctx, id).Return(nil, domainerrors.ErrNotFound)
	fx.repo.EXPECT().Remove(ctx, id).Return(nil)

	_, err := fx.service.Accept(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestAssignmentService_Accept_InvalidTransition(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusPickedUp
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)

	_, err := fx.service.Accept(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	fx.backend.AssertNotCalled(t, "Accept", ctx, id)
}

func TestAssignmentService_Accept_UnknownAssignment(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAssignmentNotFound)

	_, err := fx.service.Accept(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAssignmentService_ConfirmDelivery_RejectedCodeAllowsRetry(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusPickedUp
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil).Twice()

	fx.backend.EXPECT().ConfirmDelivery(ctx, id, "WRONG1", "").Return(nil, domainerrors.ErrInvalidConfirmation).Once()

	_, err := fx.service.ConfirmDelivery(ctx, id, "WRONG1", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidConfirmation))
	// Local state is untouched: still picked_up, nothing stored.
	assert.Equal(t, entity.StatusPickedUp, record.Status)
	fx.repo.AssertNotCalled(t, "Upsert", ctx, mock.Anything)

	// A retry with the correct code completes the delivery.
	fx.backend.EXPECT().ConfirmDelivery(ctx, id, "RIGHT1", "").Return(record.Clone(), nil).Once()
	fx.repo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.DeliveryAssignment")).Return(nil)

	got, err := fx.service.ConfirmDelivery(ctx, id, "RIGHT1", "")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, got.Status)
}

func TestAssignmentService_ConfirmDelivery_TimeoutKeepsLocalState(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusPickedUp
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)
	fx.backend.EXPECT().ConfirmDelivery(ctx, id, "RIGHT1", "").Return(nil, domainerrors.ErrTimeout)

	_, err := fx.service.ConfirmDelivery(ctx, id, "RIGHT1", "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTimeout))
	assert.Equal(t, entity.StatusPickedUp, record.Status)
	fx.repo.AssertNotCalled(t, "Upsert", ctx, mock.Anything)
}

func TestAssignmentService_Cancel_TerminalAssignmentRejected(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusDelivered
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)

	_, err := fx.service.Cancel(ctx, id, "changed my mind")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestAssignmentService_Cancel_RepeatedCallIsNoop(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusCancelled
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)

	got, err := fx.service.Cancel(ctx, id, "again")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, got.Status)
	fx.backend.AssertNotCalled(t, "Cancel", ctx, id, "again")
}

func TestAssignmentService_Ack_NonTerminalRejected(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusAssigned
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)

	err := fx.service.Ack(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	fx.repo.AssertNotCalled(t, "Remove", ctx, id)
}

func TestAssignmentService_Refresh_VanishedAssignmentRemoved(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.backend.EXPECT().FetchAssignment(ctx, id).Return(nil, domainerrors.ErrNotFound)
	fx.repo.EXPECT().Remove(ctx, id).Return(repository.ErrAssignmentNotFound)

	_, err := fx.service.Refresh(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
