// Package locate reads device positions from the local platform bridge.
package locate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"courierd/config"
	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/entity"
	"courierd/internal/domain/service"

	"github.com/pkg/errors"
)

// bridgeProvider queries the device's location bridge endpoint for a fresh
// fix. The bridge owns the actual GPS hardware access; this provider only
// enforces the freshness and error contract of the runtime.
type bridgeProvider struct {
	endpoint   string
	maxFixAge  time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewBridgeProvider creates the device bridge location provider.
func NewBridgeProvider(cfg *config.Config, logger *slog.Logger) service.LocationProvider {
	maxFixAge := cfg.Tracking.MaxFixAge
	if maxFixAge <= 0 {
		maxFixAge = 30 * time.Second
	}

	return &bridgeProvider{
		endpoint:  cfg.Tracking.BridgeEndpoint,
		maxFixAge: maxFixAge,
		httpClient: &http.Client{
			Timeout: cfg.Tracking.SampleTimeout,
		},
		logger: logger,
	}
}

// CurrentLocation returns a fresh position fix or a typed error. A fix older
// than the configured freshness window is treated as unavailable: this system
// prefers a fresh-but-occasionally-missing sample over a stale one.
func (p *bridgeProvider) CurrentLocation(ctx context.Context) (*entity.LocationSample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"/location", nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, domainerrors.ErrTimeout.WithDetails("position fix timed out")
		}
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, domainerrors.ErrTimeout.WithDetails("position fix timed out")
		}

		return nil, domainerrors.ErrUnavailable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return nil, domainerrors.ErrPermissionDenied
	default:
		return nil, domainerrors.ErrUnavailable.WithDetails(resp.Status)
	}

	var sample entity.LocationSample
	if err := json.NewDecoder(resp.Body).Decode(&sample); err != nil {
		return nil, domainerrors.ErrUnavailable.WithDetails("malformed position fix")
	}

	if !sample.HasValidCoordinates() {
		return nil, domainerrors.ErrUnavailable.WithDetails("fix outside WGS84 bounds")
	}

	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now()
	} else if age := time.Since(sample.Timestamp); age > p.maxFixAge {
		p.logger.Debug("Discarding stale position fix",
			slog.Duration("age", age),
			slog.Duration("max_age", p.maxFixAge),
		)

		return nil, domainerrors.ErrUnavailable.WithDetails("position fix is stale")
	}

	return &sample, nil
}
