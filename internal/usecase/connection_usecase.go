package usecase

import (
	"context"

	"courierd/internal/domain/entity"
	"courierd/internal/domain/service"
)

// ConnectionUsecase exposes the persistent channel to the caller layer and
// routes server pushes into the assignment lifecycle.
type ConnectionUsecase interface {
	// Connect brings the channel up and bootstraps the assignment set.
	Connect(ctx context.Context) error

	// Disconnect tears the channel down locally.
	Disconnect()

	// Status returns a snapshot of the connection state.
	Status() entity.ConnectionState

	// SetCourierStatus announces the courier's availability to dispatch.
	SetCourierStatus(ctx context.Context, status entity.CourierStatus) error

	// InstallCredential stores a fresh bearer token obtained by the caller
	// layer's login flow.
	InstallCredential(token string) error

	// Notifications returns the most recent out-of-band notifications,
	// newest first.
	Notifications() []*service.NotificationEvent
}
