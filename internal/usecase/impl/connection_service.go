package impl

import (
	"context"
	"log/slog"
	"sync"

	"courierd/internal/domain/entity"
	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/service"
	"courierd/internal/usecase"

	"github.com/pkg/errors"
)

const notificationKeep = 50

type connectionService struct {
	channel     service.Channel
	assignments usecase.AssignmentUsecase
	creds       service.CredentialStore
	logger      *slog.Logger

	mu            sync.Mutex
	notifications []*service.NotificationEvent
}

// NewConnectionService exposes the persistent channel to the caller layer and
// routes server pushes into the assignment lifecycle. Listener registration
// happens here, once, so every push reaches exactly one handler.
func NewConnectionService(
	channel service.Channel,
	assignments usecase.AssignmentUsecase,
	creds service.CredentialStore,
	logger *slog.Logger,
) usecase.ConnectionUsecase {
	srv := &connectionService{
		channel:     channel,
		assignments: assignments,
		creds:       creds,
		logger:      logger,
	}

	channel.OnNewAssignment(srv.handleNewAssignment)
	channel.OnAssignmentUpdate(srv.handleAssignmentUpdate)
	channel.OnNotification(srv.handleNotification)
	channel.OnPhaseChange(srv.handlePhaseChange)
	channel.OnForcedLogout(srv.handleForcedLogout)

	return srv
}

// Connect brings the channel up and refreshes the assignment set from the
// source of truth. A failed bootstrap does not tear the channel back down;
// the set heals on the next refresh.
func (srv *connectionService) Connect(ctx context.Context) error {
	if err := srv.channel.Connect(ctx); err != nil {
		return err
	}

	if err := srv.assignments.Bootstrap(ctx); err != nil {
		srv.logger.Warn("Assignment bootstrap after connect failed", slog.Any("error", err))
	}

	return nil
}

func (srv *connectionService) Disconnect() {
	srv.channel.Disconnect()
}

func (srv *connectionService) Status() entity.ConnectionState {
	return srv.channel.State()
}

// SetCourierStatus announces availability to dispatch. It requires a live
// channel: a silent drop here would leave dispatch with a stale view of the
// courier.
func (srv *connectionService) SetCourierStatus(ctx context.Context, status entity.CourierStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown courier status " + string(status))
	}
	if !srv.channel.IsConnected() {
		return domainerrors.ErrNotConnected
	}

	payload := map[string]string{"status": string(status)}
	if err := srv.channel.Send(service.MessageStatusChange, payload); err != nil {
		return errors.Wrap(err, "send status change")
	}

	srv.logger.Info("Courier status announced", slog.String("status", string(status)))

	return nil
}

func (srv *connectionService) InstallCredential(token string) error {
	return srv.creds.SetToken(token)
}

// Notifications returns the retained notifications, newest first.
func (srv *connectionService) Notifications() []*service.NotificationEvent {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	out := make([]*service.NotificationEvent, 0, len(srv.notifications))
	for i := len(srv.notifications) - 1; i >= 0; i-- {
		out = append(out, srv.notifications[i])
	}

	return out
}

func (srv *connectionService) handleNewAssignment(assignment *entity.DeliveryAssignment) {
	if err := srv.assignments.IngestAssignment(context.Background(), assignment); err != nil {
		srv.logger.Warn("Pushed assignment rejected", slog.Any("error", err))
	}
}

func (srv *connectionService) handleAssignmentUpdate(event *service.AssignmentUpdateEvent) {
	if event == nil {
		return
	}
	if err := srv.assignments.ApplyRemoteUpdate(context.Background(), event.AssignmentID, event.Status); err != nil {
		srv.logger.Warn("Pushed status update rejected",
			slog.String("assignment_id", event.AssignmentID.String()),
			slog.Any("error", err),
		)
	}
}

func (srv *connectionService) handleNotification(event *service.NotificationEvent) {
	if event == nil {
		return
	}

	srv.mu.Lock()
	srv.notifications = append(srv.notifications, event)
	if len(srv.notifications) > notificationKeep {
		srv.notifications = srv.notifications[len(srv.notifications)-notificationKeep:]
	}
	srv.mu.Unlock()
}

func (srv *connectionService) handlePhaseChange(state entity.ConnectionState) {
	srv.logger.Info("Connection phase changed",
		slog.String("phase", string(state.Phase)),
		slog.Int("reconnect_attempts", state.ReconnectAttempts),
	)
}

func (srv *connectionService) handleForcedLogout() {
	srv.logger.Warn("Session terminated by server, credentials cleared")

	srv.handleNotification(&service.NotificationEvent{
		Title:    "Signed out",
		Body:     "Your session was ended by the server. Please sign in again.",
		Priority: "high",
	})
}
