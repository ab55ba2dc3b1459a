package impl

import (
	"context"
	"log/slog"
	"time"

	"courierd/internal/domain/entity"
	"courierd/internal/domain/service"
	"courierd/internal/usecase"
)

const sinkPublishTimeout = 5 * time.Second

type publisherService struct {
	sinks  []service.LocationSink
	creds  service.CredentialStore
	logger *slog.Logger
}

// NewPublisherService fans accepted location samples out to every configured
// sink. The sinks are independent: one failing never blocks or suppresses the
// others, and a sample that every sink rejects is dropped with a log line.
func NewPublisherService(
	sinks []service.LocationSink,
	creds service.CredentialStore,
	logger *slog.Logger,
) usecase.LocationPublisher {
	kept := make([]service.LocationSink, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			kept = append(kept, sink)
		}
	}

	return &publisherService{sinks: kept, creds: creds, logger: logger}
}

func (srv *publisherService) Publish(ctx context.Context, sample *entity.LocationSample) {
	if sample == nil {
		return
	}

	courierID, err := srv.creds.CourierID()
	if err != nil {
		srv.logger.Warn("Dropping location sample, no courier identity", slog.Any("error", err))

		return
	}

	delivered := 0
	for _, sink := range srv.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, sinkPublishTimeout)
		err := sink.Publish(sinkCtx, courierID, sample)
		cancel()

		if err != nil {
			srv.logger.Warn("Location sink rejected sample",
				slog.String("sink", sink.Name()),
				slog.Any("error", err),
			)

			continue
		}
		delivered++
	}

	if delivered == 0 && len(srv.sinks) > 0 {
		srv.logger.Warn("Location sample dropped by every sink",
			slog.Time("sampled_at", sample.Timestamp),
		)
	}
}
