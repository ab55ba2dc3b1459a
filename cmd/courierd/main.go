package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"courierd/config"
	"courierd/internal/delivery"
	"courierd/internal/delivery/http"
	"courierd/internal/delivery/http/router/handler"
	"courierd/internal/domain/service"
	"courierd/internal/infra/auth"
	"courierd/internal/infra/backend"
	"courierd/internal/infra/channel"
	"courierd/internal/infra/firebase"
	"courierd/internal/infra/locate"
	logs "courierd/internal/infra/log"
	"courierd/internal/infra/persistence/memory"
	"courierd/internal/usecase"
	"courierd/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
			registerShutdown,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewAssignmentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newCredentialStore,
			backend.NewClient,
			channel.NewWebsocketDialer,
			newChannel,
			locate.NewBridgeProvider,
			newLocationSinks,
		),
	)
}

// newCredentialStore seeds the store from config when a token is present;
// otherwise the caller layer installs one through the control API.
func newCredentialStore(cfg *config.Config) (service.CredentialStore, error) {
	return auth.NewCredentialStore(cfg.Auth.Token)
}

func newChannel(cfg *config.Config, dialer service.ChannelDialer, creds service.CredentialStore, logger *slog.Logger) service.Channel {
	return channel.NewManager(cfg, dialer, creds, logger)
}

// newLocationSinks assembles the configured sinks. The channel sink is always
// present; the Firebase realtime database sink only when configured.
func newLocationSinks(ctx context.Context, cfg *config.Config, ch service.Channel) ([]service.LocationSink, error) {
	sinks := []service.LocationSink{channel.NewLocationSink(ch)}

	if cfg.Firebase != nil {
		realtime, err := firebase.NewRealtimeSink(ctx, cfg.Firebase.DatabaseURL, cfg.Firebase.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create Firebase sink: %w", err)
		}
		sinks = append(sinks, realtime)
	}

	return sinks, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPublisherService,
			impl.NewTrackingService,
			impl.NewAssignmentService,
			impl.NewConnectionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAssignmentHandler,
			handler.NewTrackingHandler,
			handler.NewConnectionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerShutdown stops the sampling loop and tears the channel down before
// the process exits.
func registerShutdown(lc fx.Lifecycle, ch service.Channel, tracking usecase.TrackingUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			tracking.StopTracking()
			ch.Disconnect()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
