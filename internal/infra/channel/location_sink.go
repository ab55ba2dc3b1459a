package channel

import (
	"context"

	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/entity"
	"courierd/internal/domain/service"
)

// locationSink pushes samples over the persistent channel as the secondary
// publish path. Delivery is best-effort; the keyed store is the primary.
type locationSink struct {
	channel service.Channel
}

// NewLocationSink creates the channel-backed location sink.
func NewLocationSink(ch service.Channel) service.LocationSink {
	return &locationSink{channel: ch}
}

// Name identifies the sink in logs.
func (s *locationSink) Name() string {
	return "channel"
}

// Publish sends the sample as a location_update frame. The courier identity
// is carried by the session, not the frame.
func (s *locationSink) Publish(ctx context.Context, courierID string, sample *entity.LocationSample) error {
	if !s.channel.IsConnected() {
		return domainerrors.ErrNotConnected
	}

	return s.channel.Send(service.MessageLocationUpdate, sample)
}
