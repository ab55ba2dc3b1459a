package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"courierd/config"
	"courierd/internal/domain/entity"
	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/repository"
	"courierd/internal/domain/service"
	"courierd/internal/usecase"
	"courierd/internal/util"

	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	defaultActiveInterval  = 15 * time.Second
	defaultIdleInterval    = 60 * time.Second
	defaultAccuracyCeiling = 100.0
	defaultSampleTimeout   = 5 * time.Second
)

type trackingService struct {
	provider  service.LocationProvider
	publisher usecase.LocationPublisher
	repo      repository.AssignmentRepository
	logger    *slog.Logger

	activeInterval  time.Duration
	idleInterval    time.Duration
	accuracyCeiling float64
	sampleTimeout   time.Duration

	mu         sync.Mutex
	active     bool
	generation uint64
	stop       chan struct{}
	interval   time.Duration
	startedAt  time.Time
	lastSample *entity.LocationSample
	odometerM  float64
}

// NewTrackingService creates the adaptive location sampling loop. The loop
// samples every ActiveInterval while at least one delivery is executing and
// relaxes to IdleInterval otherwise.
func NewTrackingService(
	cfg *config.Config,
	provider service.LocationProvider,
	publisher usecase.LocationPublisher,
	repo repository.AssignmentRepository,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	srv := &trackingService{
		provider:        provider,
		publisher:       publisher,
		repo:            repo,
		logger:          logger,
		activeInterval:  cfg.Tracking.ActiveInterval,
		idleInterval:    cfg.Tracking.IdleInterval,
		accuracyCeiling: cfg.Tracking.AccuracyCeilingM,
		sampleTimeout:   cfg.Tracking.SampleTimeout,
	}
	if srv.activeInterval <= 0 {
		srv.activeInterval = defaultActiveInterval
	}
	if srv.idleInterval <= 0 {
		srv.idleInterval = defaultIdleInterval
	}
	if srv.accuracyCeiling <= 0 {
		srv.accuracyCeiling = defaultAccuracyCeiling
	}
	if srv.sampleTimeout <= 0 {
		srv.sampleTimeout = defaultSampleTimeout
	}
	srv.interval = srv.idleInterval

	return srv
}

// StartTracking begins sampling. The first fix is taken synchronously so a
// missing permission or a dead provider surfaces to the caller instead of
// failing silently inside the loop. Calling it while already active is a
// no-op.
func (srv *trackingService) StartTracking(ctx context.Context) error {
	srv.mu.Lock()
	if srv.active {
		srv.mu.Unlock()

		return nil
	}
	srv.mu.Unlock()

	probeCtx, cancel := context.WithTimeout(ctx, srv.sampleTimeout)
	sample, err := srv.provider.CurrentLocation(probeCtx)
	cancel()
	if err != nil {
		return errors.Wrap(err, "probe location provider")
	}

	srv.mu.Lock()
	if srv.active {
		srv.mu.Unlock()

		return nil
	}
	srv.active = true
	srv.generation++
	srv.odometerM = 0
	srv.lastSample = nil
	srv.startedAt = time.Now()
	srv.stop = make(chan struct{})
	generation := srv.generation
	stop := srv.stop
	srv.mu.Unlock()

	srv.acceptSample(context.Background(), sample)

	srv.logger.Info("Location tracking started",
		slog.Duration("active_interval", srv.activeInterval),
		slog.Duration("idle_interval", srv.idleInterval),
	)

	go srv.loop(generation, stop)

	return nil
}

// StopTracking halts the loop. Safe to call repeatedly and concurrently with
// an in-flight sample; the generation counter keeps a stopped loop from
// publishing after teardown.
func (srv *trackingService) StopTracking() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.active {
		return
	}

	srv.active = false
	srv.generation++
	close(srv.stop)
	srv.stop = nil

	srv.logger.Info("Location tracking stopped",
		slog.String("session", util.FormatDuration(time.Since(srv.startedAt))),
		slog.String("distance", util.FormatDistance(srv.odometerM)),
	)
}

func (srv *trackingService) Status() usecase.TrackingStatus {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	status := usecase.TrackingStatus{
		Active:    srv.active,
		Interval:  srv.interval,
		OdometerM: srv.odometerM,
	}
	if srv.lastSample != nil {
		sample := *srv.lastSample
		status.LastSample = &sample
	}

	return status
}

func (srv *trackingService) loop(generation uint64, stop <-chan struct{}) {
	for {
		interval := srv.nextInterval()

		srv.mu.Lock()
		if srv.generation != generation {
			srv.mu.Unlock()

			return
		}
		srv.interval = interval
		srv.mu.Unlock()

		select {
		case <-stop:
			return
		case <-time.After(interval):
		}

		srv.sampleOnce(generation)
	}
}

// sampleOnce takes one fix and feeds it through quality checks. Permission
// loss deactivates tracking; transient provider failures skip the tick and
// keep the loop alive.
func (srv *trackingService) sampleOnce(generation uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), srv.sampleTimeout)
	defer cancel()

	sample, err := srv.provider.CurrentLocation(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrPermissionDenied):
			srv.logger.Warn("Location permission revoked, stopping tracking")
			srv.StopTracking()
		case errors.Is(err, domainerrors.ErrTimeout):
			srv.logger.Debug("Location fix timed out, skipping tick")
		default:
			srv.logger.Warn("Location fix failed, skipping tick", slog.Any("error", err))
		}

		return
	}

	srv.mu.Lock()
	stale := srv.generation != generation
	srv.mu.Unlock()
	if stale {
		return
	}

	srv.acceptSample(ctx, sample)
}

// acceptSample applies the accuracy ceiling and, when the fix passes, records
// it and fans it out to the sinks.
func (srv *trackingService) acceptSample(ctx context.Context, sample *entity.LocationSample) {
	if sample == nil || !sample.HasValidCoordinates() {
		srv.logger.Warn("Discarded malformed location fix")

		return
	}
	if !sample.WithinAccuracy(srv.accuracyCeiling) {
		srv.logger.Warn("Discarded low quality location fix",
			slog.Float64("accuracy_m", sample.Accuracy),
			slog.Float64("ceiling_m", srv.accuracyCeiling),
		)

		return
	}

	srv.mu.Lock()
	if srv.lastSample != nil {
		srv.odometerM += geo.DistanceHaversine(srv.lastSample.Point(), sample.Point())
	}
	srv.lastSample = sample
	srv.mu.Unlock()

	srv.publisher.Publish(ctx, sample)
}

func (srv *trackingService) nextInterval() time.Duration {
	ctx, cancel := context.WithTimeout(context.Background(), srv.sampleTimeout)
	defer cancel()

	active, err := srv.repo.CountActive(ctx)
	if err != nil {
		srv.logger.Warn("Active delivery count failed, keeping idle cadence", slog.Any("error", err))

		return srv.idleInterval
	}
	if active > 0 {
		return srv.activeInterval
	}

	return srv.idleInterval
}
