package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/service"
	mockSvc "courierd/internal/mocks/service"
	"courierd/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

type publisherServiceFixtures struct {
	service usecase.LocationPublisher
	sinks   []*mockSvc.MockLocationSink
	creds   *mockSvc.MockCredentialStore
}

func createTestPublisherService(t *testing.T, sinkCount int) publisherServiceFixtures {
	sinks := make([]*mockSvc.MockLocationSink, sinkCount)
	ifaces := make([]service.LocationSink, sinkCount)
	for i := range sinks {
		sinks[i] = mockSvc.NewMockLocationSink(t)
		ifaces[i] = sinks[i]
	}

	creds := mockSvc.NewMockCredentialStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return publisherServiceFixtures{
		service: NewPublisherService(ifaces, creds, logger),
		sinks:   sinks,
		creds:   creds,
	}
}

func TestPublisherService_Publish_FansOutToAllSinks(t *testing.T) {
	fx := createTestPublisherService(t, 2)
	sample := goodSample()

	fx.creds.EXPECT().CourierID().Return("courier-7", nil)
	fx.sinks[0].EXPECT().Publish(mock.Anything, "courier-7", sample).Return(nil).Once()
	fx.sinks[1].EXPECT().Publish(mock.Anything, "courier-7", sample).Return(nil).Once()

	fx.service.Publish(context.Background(), sample)
}

func TestPublisherService_Publish_FailingSinkDoesNotBlockOthers(t *testing.T) {
	fx := createTestPublisherService(t, 2)
	sample := goodSample()

	fx.creds.EXPECT().CourierID().Return("courier-7", nil)
	fx.sinks[0].EXPECT().Publish(mock.Anything, "courier-7", sample).
		Return(errors.New("realtime backend unreachable")).Once()
	fx.sinks[0].EXPECT().Name().Return("firebase").Maybe()
	fx.sinks[1].EXPECT().Publish(mock.Anything, "courier-7", sample).Return(nil).Once()

	fx.service.Publish(context.Background(), sample)
}

func TestPublisherService_Publish_AllSinksRejecting(t *testing.T) {
	fx := createTestPublisherService(t, 2)
	sample := goodSample()

	fx.creds.EXPECT().CourierID().Return("courier-7", nil)
	for _, sink := range fx.sinks {
		sink.EXPECT().Publish(mock.Anything, "courier-7", sample).
			Return(errors.New("write rejected")).Once()
		sink.EXPECT().Name().Return("sink").Maybe()
	}

	// The sample is dropped; dropping must not panic or retry.
	fx.service.Publish(context.Background(), sample)
}

func TestPublisherService_Publish_NoCredentialDropsSample(t *testing.T) {
	fx := createTestPublisherService(t, 1)

	fx.creds.EXPECT().CourierID().Return("", domainerrors.ErrAuthentication)

	fx.service.Publish(context.Background(), goodSample())

	fx.sinks[0].AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublisherService_Publish_NilSampleIgnored(t *testing.T) {
	fx := createTestPublisherService(t, 1)

	fx.service.Publish(context.Background(), nil)

	fx.sinks[0].AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublisherService_NilSinksFilteredAtConstruction(t *testing.T) {
	creds := mockSvc.NewMockCredentialStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	creds.EXPECT().CourierID().Return("courier-7", nil)

	publisher := NewPublisherService([]service.LocationSink{nil, nil}, creds, logger)

	// With every slot nil there are no sinks at all, so this must be a no-op.
	publisher.Publish(context.Background(), goodSample())
}
