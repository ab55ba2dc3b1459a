package service

import (
	"context"

	"courierd/internal/domain/entity"
)

// LocationProvider reads the device's current position. Implementations must
// return a fresh fix or a typed error (PermissionDenied, Unavailable,
// Timeout); a stale cached fix is worse than no fix for this system.
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (*entity.LocationSample, error)
}

// LocationSink is one outbound path for accepted location samples. Sinks are
// fanned out independently; a failing sink never blocks its siblings. Every
// write carries the complete sample, never a partial record.
type LocationSink interface {
	// Name identifies the sink in logs.
	Name() string

	// Publish writes the sample keyed by courier id.
	Publish(ctx context.Context, courierID string, sample *entity.LocationSample) error
}
