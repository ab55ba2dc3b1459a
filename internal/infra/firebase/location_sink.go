// Package firebase implements the primary low-latency location sink on the
// Firebase Realtime Database.
package firebase

import (
	"context"
	"fmt"

	"courierd/internal/domain/entity"
	"courierd/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

type realtimeSink struct {
	client *db.Client
}

// NewRealtimeSink creates the Realtime Database location sink.
func NewRealtimeSink(ctx context.Context, databaseURL, credentialsPath string) (service.LocationSink, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	return &realtimeSink{
		client: client,
	}, nil
}

// Name identifies the sink in logs.
func (s *realtimeSink) Name() string {
	return "realtime-db"
}

// Publish writes the full sample atomically under drivers/{id}/location,
// letting the server stamp the receipt time.
func (s *realtimeSink) Publish(ctx context.Context, courierID string, sample *entity.LocationSample) error {
	record := map[string]any{
		"latitude":  sample.Latitude,
		"longitude": sample.Longitude,
		"accuracy":  sample.Accuracy,
		"timestamp": sample.Timestamp.UnixMilli(),
		// Server-assigned receipt timestamp.
		"received_at": map[string]any{".sv": "timestamp"},
	}
	if sample.Speed != nil {
		record["speed"] = *sample.Speed
	}
	if sample.Bearing != nil {
		record["bearing"] = *sample.Bearing
	}

	ref := s.client.NewRef(fmt.Sprintf("drivers/%s/location", courierID))
	if err := ref.Set(ctx, record); err != nil {
		return fmt.Errorf("failed to write location record: %w", err)
	}

	return nil
}
