package locate

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"courierd/config"
	"courierd/internal/domain/entity"
	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProvider(t *testing.T, handler http.Handler) service.LocationProvider {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Tracking.BridgeEndpoint = server.URL
	cfg.Tracking.SampleTimeout = time.Second
	cfg.Tracking.MaxFixAge = 30 * time.Second
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewBridgeProvider(cfg, logger)
}

func serveFix(sample entity.LocationSample) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sample)
	})
}

func TestBridgeProvider_CurrentLocation_FreshFix(t *testing.T) {
	provider := createTestProvider(t, serveFix(entity.LocationSample{
		Latitude:  25.0330,
		Longitude: 121.5654,
		Accuracy:  8,
		Timestamp: time.Now(),
	}))

	sample, err := provider.CurrentLocation(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 25.0330, sample.Latitude, 1e-9)
	assert.InDelta(t, 121.5654, sample.Longitude, 1e-9)
}

func TestBridgeProvider_CurrentLocation_MissingTimestampStampedNow(t *testing.T) {
	provider := createTestProvider(t, serveFix(entity.LocationSample{
		Latitude:  25.0330,
		Longitude: 121.5654,
		Accuracy:  8,
	}))

	sample, err := provider.CurrentLocation(context.Background())

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), sample.Timestamp, 5*time.Second)
}

func TestBridgeProvider_CurrentLocation_StaleFixRejected(t *testing.T) {
	provider := createTestProvider(t, serveFix(entity.LocationSample{
		Latitude:  25.0330,
		Longitude: 121.5654,
		Accuracy:  8,
		Timestamp: time.Now().Add(-time.Hour),
	}))

	_, err := provider.CurrentLocation(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnavailable))
}

func TestBridgeProvider_CurrentLocation_InvalidCoordinatesRejected(t *testing.T) {
	provider := createTestProvider(t, serveFix(entity.LocationSample{
		Latitude:  200, // outside WGS84 bounds
		Longitude: 121.5654,
		Accuracy:  8,
		Timestamp: time.Now(),
	}))

	_, err := provider.CurrentLocation(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnavailable))
}

func TestBridgeProvider_CurrentLocation_PermissionDenied(t *testing.T) {
	provider := createTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := provider.CurrentLocation(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestBridgeProvider_CurrentLocation_BridgeErrorIsUnavailable(t *testing.T) {
	provider := createTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := provider.CurrentLocation(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrUnavailable))
}

func TestBridgeProvider_CurrentLocation_MalformedBody(t *testing.T) {
	provider := createTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{{"))
	}))

	_, err := provider.CurrentLocation(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrUnavailable))
}

func TestBridgeProvider_CurrentLocation_SlowBridgeTimesOut(t *testing.T) {
	provider := createTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := provider.CurrentLocation(ctx)

	assert.True(t, errors.Is(err, domainerrors.ErrTimeout))
}
