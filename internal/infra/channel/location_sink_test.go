package channel

import (
	"context"
	"testing"
	"time"

	"courierd/internal/domain/entity"
	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/service"
	mockSvc "courierd/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationSink_Publish_SendsFrameWhileConnected(t *testing.T) {
	ch := mockSvc.NewMockChannel(t)
	sink := NewLocationSink(ch)
	sample := &entity.LocationSample{
		Latitude:  25.0330,
		Longitude: 121.5654,
		Accuracy:  10,
		Timestamp: time.Now(),
	}

	ch.EXPECT().IsConnected().Return(true).Once()
	ch.EXPECT().Send(service.MessageLocationUpdate, sample).Return(nil).Once()

	require.NoError(t, sink.Publish(context.Background(), "courier-7", sample))
}

func TestLocationSink_Publish_RejectsWhileDisconnected(t *testing.T) {
	ch := mockSvc.NewMockChannel(t)
	sink := NewLocationSink(ch)

	ch.EXPECT().IsConnected().Return(false).Once()

	err := sink.Publish(context.Background(), "courier-7", &entity.LocationSample{})

	assert.True(t, errors.Is(err, domainerrors.ErrNotConnected))
}

func TestLocationSink_Name(t *testing.T) {
	assert.Equal(t, "channel", NewLocationSink(mockSvc.NewMockChannel(t)).Name())
}
