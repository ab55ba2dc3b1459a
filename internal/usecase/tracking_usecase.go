package usecase

import (
	"context"
	"time"

	"courierd/internal/domain/entity"
)

// TrackingStatus is a snapshot of the location sampling loop.
type TrackingStatus struct {
	Active bool `json:"active"`

	// Interval currently in force; shorter while a delivery is executing.
	Interval time.Duration `json:"interval"`

	LastSample *entity.LocationSample `json:"last_sample,omitempty"`

	// OdometerM is the straight-line distance accumulated over accepted
	// samples since tracking started.
	OdometerM float64 `json:"odometer_m"`
}

// TrackingUsecase runs the adaptive location sampling loop. StartTracking and
// StopTracking are idempotent toggles; the loop owns the single process-wide
// tracking timer.
type TrackingUsecase interface {
	// StartTracking begins sampling. It verifies the device can produce a fix
	// before the loop starts and returns a typed error otherwise.
	StartTracking(ctx context.Context) error

	// StopTracking halts sampling. Safe to call at any time, including
	// mid-sample; the loop never resurrects after teardown.
	StopTracking()

	// Status reports the current tracking state.
	Status() TrackingStatus
}

// LocationPublisher fans an accepted sample out to all configured sinks.
// Publishing is fire-and-forget for the caller; per-sink failures are logged
// and never propagate.
type LocationPublisher interface {
	Publish(ctx context.Context, sample *entity.LocationSample)
}
