package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"courierd/internal/domain/entity"
	"courierd/internal/domain/repository"
	mockRepo "courierd/internal/mocks/repository"
	mockSvc "courierd/internal/mocks/service"
	mockUC "courierd/internal/mocks/usecase"
	"courierd/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// assignmentServiceFixtures holds all test dependencies for lifecycle tests.
type assignmentServiceFixtures struct {
	service  usecase.AssignmentUsecase
	repo     *mockRepo.MockAssignmentRepository
	backend  *mockSvc.MockAssignmentBackend
	tracking *mockUC.MockTrackingUsecase
	channel  *mockSvc.MockChannel
}

func createTestAssignmentService(t *testing.T) assignmentServiceFixtures {
	repo := mockRepo.NewMockAssignmentRepository(t)
	backend := mockSvc.NewMockAssignmentBackend(t)
	tracking := mockUC.NewMockTrackingUsecase(t)
	channel := mockSvc.NewMockChannel(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Progress announcements after a commit are best-effort.
	channel.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Maybe()

	service := NewAssignmentService(repo, backend, tracking, channel, logger)

	return assignmentServiceFixtures{
		service:  service,
		repo:     repo,
		backend:  backend,
		tracking: tracking,
		channel:  channel,
	}
}

func availableAssignment(id uuid.UUID) *entity.DeliveryAssignment {
	return &entity.DeliveryAssignment{
		ID:       id,
		Status:   entity.StatusAvailable,
		Priority: entity.PriorityNormal,
		Pickup:   entity.Stop{Address: "1 Bakery Lane", Latitude: 25.04, Longitude: 121.52},
		Dropoff:  entity.Stop{Address: "99 Harbor Rd", Latitude: 25.05, Longitude: 121.55},
	}
}

func TestAssignmentService_Accept_Success(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id).Return(availableAssignment(id), nil)
	fx.backend.EXPECT().Accept(ctx, id).Return(availableAssignment(id), nil)
	fx.repo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.DeliveryAssignment")).Return(nil)

	got, err := fx.service.Accept(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAssigned, got.Status)
	require.NotNil(t, got.AssignedAt)
}

func TestAssignmentService_Accept_RepeatedCallIsNoop(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusAssigned
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)

	got, err := fx.service.Accept(ctx, id)

	// Already accepted: no backend round trip, current record returned.
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAssigned, got.Status)
	fx.backend.AssertNotCalled(t, "Accept", ctx, id)
}

func TestAssignmentService_ConfirmPickup_Success(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusAssigned
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)
	fx.backend.EXPECT().ConfirmPickup(ctx, id, "left dock").Return(record.Clone(), nil)
	fx.repo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.DeliveryAssignment")).Return(nil)

	got, err := fx.service.ConfirmPickup(ctx, id, "left dock")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPickedUp, got.Status)
	require.NotNil(t, got.PickedUpAt)
}

func TestAssignmentService_ConfirmDelivery_Success(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusPickedUp
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)
	fx.backend.EXPECT().ConfirmDelivery(ctx, id, "RIGHT1", "").Return(record.Clone(), nil)
	fx.repo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.DeliveryAssignment")).Return(nil)

	got, err := fx.service.ConfirmDelivery(ctx, id, "RIGHT1", "")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, got.Status)
	require.NotNil(t, got.DeliveredAt)
}

func TestAssignmentService_Cancel_FromPickedUp(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusPickedUp
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)
	fx.backend.EXPECT().Cancel(ctx, id, "vehicle breakdown").Return(record.Clone(), nil)
	fx.repo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.DeliveryAssignment")).Return(nil)

	got, err := fx.service.Cancel(ctx, id, "vehicle breakdown")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, got.Status)
}

func TestAssignmentService_Ack_RemovesTerminalAssignment(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusDelivered
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)
	fx.repo.EXPECT().Remove(ctx, id).Return(nil)

	require.NoError(t, fx.service.Ack(ctx, id))
}

func TestAssignmentService_ApplyRemoteUpdate_ForwardProgress(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusAssigned
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)
	fx.repo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DeliveryAssignment")).
		Run(func(ctx context.Context, assignment *entity.DeliveryAssignment) {
			assert.Equal(t, entity.StatusPickedUp, assignment.Status)
		}).
		Return(nil)

	require.NoError(t, fx.service.ApplyRemoteUpdate(ctx, id, entity.StatusPickedUp))
}

func TestAssignmentService_ApplyRemoteUpdate_StaleStatusDiscarded(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	// Courier just accepted; a delayed push still reporting "available" must
	// not roll the assignment back.
	record := availableAssignment(id)
	record.Status = entity.StatusAssigned
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil)

	require.NoError(t, fx.service.ApplyRemoteUpdate(ctx, id, entity.StatusAvailable))
	fx.repo.AssertNotCalled(t, "Upsert", ctx, mock.Anything)
}

func TestAssignmentService_ApplyRemoteUpdate_DuplicateIsIdempotent(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	record := availableAssignment(id)
	record.Status = entity.StatusPickedUp
	fx.repo.EXPECT().FindByID(ctx, id).Return(record, nil).Twice()

	require.NoError(t, fx.service.ApplyRemoteUpdate(ctx, id, entity.StatusPickedUp))
	require.NoError(t, fx.service.ApplyRemoteUpdate(ctx, id, entity.StatusPickedUp))
	fx.repo.AssertNotCalled(t, "Upsert", ctx, mock.Anything)
}

func TestAssignmentService_ApplyRemoteUpdate_UnknownAssignmentIgnored(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAssignmentNotFound)

	require.NoError(t, fx.service.ApplyRemoteUpdate(ctx, id, entity.StatusAssigned))
}

func TestAssignmentService_IngestAssignment_NewAndKnown(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	id := uuid.New()

	pushed := availableAssignment(id)
	fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAssignmentNotFound).Once()
	fx.repo.EXPECT().Upsert(ctx, pushed).Return(nil).Once()

	require.NoError(t, fx.service.IngestAssignment(ctx, pushed))

	// A second push for the same id routes through the progress guard: the
	// duplicate "available" is discarded rather than overwriting local state.
	known := availableAssignment(id)
	known.Status = entity.StatusAssigned
	fx.repo.EXPECT().FindByID(ctx, id).Return(known, nil).Twice()

	require.NoError(t, fx.service.IngestAssignment(ctx, pushed))
}

func TestAssignmentService_Bootstrap_ReplacesActiveSet(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()

	kept := availableAssignment(uuid.New())
	stale := availableAssignment(uuid.New())

	fx.backend.EXPECT().FetchAssignments(ctx).Return([]*entity.DeliveryAssignment{kept}, nil)
	fx.repo.EXPECT().List(ctx).Return([]*entity.DeliveryAssignment{stale}, nil)
	fx.repo.EXPECT().Upsert(ctx, kept).Return(nil)
	fx.repo.EXPECT().Remove(ctx, stale.ID).Return(nil)

	require.NoError(t, fx.service.Bootstrap(ctx))
}

func TestAssignmentService_List_AnnotatesDistances(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()

	record := availableAssignment(uuid.New())
	fx.repo.EXPECT().List(ctx).Return([]*entity.DeliveryAssignment{record}, nil)
	fx.tracking.EXPECT().Status().Return(usecase.TrackingStatus{
		Active: true,
		LastSample: &entity.LocationSample{
			Latitude:  25.03,
			Longitude: 121.50,
			Accuracy:  10,
			Timestamp: time.Now(),
		},
	})

	snapshots, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	require.NotNil(t, snapshots[0].DistanceToPickupM)
	require.NotNil(t, snapshots[0].DistanceToDropoffM)
	assert.Greater(t, *snapshots[0].DistanceToPickupM, 0.0)
	assert.Greater(t, *snapshots[0].DistanceToDropoffM, *snapshots[0].DistanceToPickupM)
}

func TestAssignmentService_List_NoPositionNoDistances(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()

	record := availableAssignment(uuid.New())
	fx.repo.EXPECT().List(ctx).Return([]*entity.DeliveryAssignment{record}, nil)
	fx.tracking.EXPECT().Status().Return(usecase.TrackingStatus{})

	snapshots, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Nil(t, snapshots[0].DistanceToPickupM)
	assert.Nil(t, snapshots[0].DistanceToDropoffM)
}
