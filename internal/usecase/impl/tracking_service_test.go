package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"courierd/config"
	"courierd/internal/domain/entity"
	domainerrors "courierd/internal/domain/errors"
	mockRepo "courierd/internal/mocks/repository"
	mockSvc "courierd/internal/mocks/service"
	mockUC "courierd/internal/mocks/usecase"
	"courierd/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type trackingServiceFixtures struct {
	service   usecase.TrackingUsecase
	provider  *mockSvc.MockLocationProvider
	publisher *mockUC.MockLocationPublisher
	repo      *mockRepo.MockAssignmentRepository
}

func createTestTrackingService(t *testing.T, cfg *config.Config) trackingServiceFixtures {
	provider := mockSvc.NewMockLocationProvider(t)
	publisher := mockUC.NewMockLocationPublisher(t)
	repo := mockRepo.NewMockAssignmentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTrackingService(cfg, provider, publisher, repo, logger)

	return trackingServiceFixtures{
		service:   service,
		provider:  provider,
		publisher: publisher,
		repo:      repo,
	}
}

func quietTrackingConfig() *config.Config {
	cfg := &config.Config{}
	// Long intervals so the background loop never ticks during a test.
	cfg.Tracking.ActiveInterval = time.Minute
	cfg.Tracking.IdleInterval = 5 * time.Minute
	cfg.Tracking.AccuracyCeilingM = 100
	cfg.Tracking.SampleTimeout = time.Second

	return cfg
}

func goodSample() *entity.LocationSample {
	return &entity.LocationSample{
		Latitude:  25.0330,
		Longitude: 121.5654,
		Accuracy:  12,
		Timestamp: time.Now(),
	}
}

func TestTrackingService_StartTracking_PublishesInitialSample(t *testing.T) {
	fx := createTestTrackingService(t, quietTrackingConfig())

	sample := goodSample()
	fx.provider.EXPECT().CurrentLocation(mock.Anything).Return(sample, nil).Once()
	fx.publisher.EXPECT().Publish(mock.Anything, sample).Once()
	fx.repo.EXPECT().CountActive(mock.Anything).Return(0, nil).Maybe()

	require.NoError(t, fx.service.StartTracking(context.Background()))
	defer fx.service.StopTracking()

	status := fx.service.Status()
	assert.True(t, status.Active)
	require.NotNil(t, status.LastSample)
	assert.Equal(t, sample.Latitude, status.LastSample.Latitude)
}

func TestTrackingService_StartTracking_Idempotent(t *testing.T) {
	fx := createTestTrackingService(t, quietTrackingConfig())

	fx.provider.EXPECT().CurrentLocation(mock.Anything).Return(goodSample(), nil).Once()
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Once()
	fx.repo.EXPECT().CountActive(mock.Anything).Return(0, nil).Maybe()

	require.NoError(t, fx.service.StartTracking(context.Background()))
	defer fx.service.StopTracking()

	// No second probe, no second publish.
	require.NoError(t, fx.service.StartTracking(context.Background()))
	assert.True(t, fx.service.Status().Active)
}

func TestTrackingService_StartTracking_PermissionDenied(t *testing.T) {
	fx := createTestTrackingService(t, quietTrackingConfig())

	fx.provider.EXPECT().CurrentLocation(mock.Anything).Return(nil, domainerrors.ErrPermissionDenied)

	err := fx.service.StartTracking(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
	assert.False(t, fx.service.Status().Active)
}

func TestTrackingService_LowAccuracySampleNeverPublished(t *testing.T) {
	fx := createTestTrackingService(t, quietTrackingConfig())

	// A wildly inaccurate fix passes the provider but must be dropped before
	// any sink sees it.
	bad := goodSample()
	bad.Accuracy = 600000
	fx.provider.EXPECT().CurrentLocation(mock.Anything).Return(bad, nil).Once()
	fx.repo.EXPECT().CountActive(mock.Anything).Return(0, nil).Maybe()

	require.NoError(t, fx.service.StartTracking(context.Background()))
	defer fx.service.StopTracking()

	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	assert.Nil(t, fx.service.Status().LastSample)
}

func TestTrackingService_StopTracking_Idempotent(t *testing.T) {
	fx := createTestTrackingService(t, quietTrackingConfig())

	fx.provider.EXPECT().CurrentLocation(mock.Anything).Return(goodSample(), nil).Once()
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Once()
	fx.repo.EXPECT().CountActive(mock.Anything).Return(0, nil).Maybe()

	require.NoError(t, fx.service.StartTracking(context.Background()))

	fx.service.StopTracking()
	fx.service.StopTracking()

	assert.False(t, fx.service.Status().Active)
}

func TestTrackingService_ActiveDeliveryShortensInterval(t *testing.T) {
	cfg := quietTrackingConfig()
	fx := createTestTrackingService(t, cfg)

	fx.provider.EXPECT().CurrentLocation(mock.Anything).Return(goodSample(), nil).Maybe()
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Maybe()
	fx.repo.EXPECT().CountActive(mock.Anything).Return(1, nil).Maybe()

	require.NoError(t, fx.service.StartTracking(context.Background()))
	defer fx.service.StopTracking()

	// The loop picks the cadence before its first wait.
	assert.Eventually(t, func() bool {
		return fx.service.Status().Interval == cfg.Tracking.ActiveInterval
	}, time.Second, 10*time.Millisecond)
}

func TestTrackingService_OdometerAccumulates(t *testing.T) {
	fx := createTestTrackingService(t, quietTrackingConfig())
	srv, ok := fx.service.(*trackingService)
	require.True(t, ok)

	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Twice()

	first := goodSample()
	second := goodSample()
	second.Latitude += 0.001 // roughly 111 m due north

	srv.acceptSample(context.Background(), first)
	srv.acceptSample(context.Background(), second)

	assert.InDelta(t, 111, fx.service.Status().OdometerM, 5)
}
