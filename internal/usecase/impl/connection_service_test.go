package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"courierd/internal/domain/entity"
	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/service"
	mockSvc "courierd/internal/mocks/service"
	mockUC "courierd/internal/mocks/usecase"
	"courierd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type channelHandlers struct {
	newAssignment func(*entity.DeliveryAssignment)
	update        func(*service.AssignmentUpdateEvent)
	notification  func(*service.NotificationEvent)
	phaseChange   func(entity.ConnectionState)
	forcedLogout  func()
}

type connectionServiceFixtures struct {
	service     usecase.ConnectionUsecase
	channel     *mockSvc.MockChannel
	assignments *mockUC.MockAssignmentUsecase
	creds       *mockSvc.MockCredentialStore
	handlers    *channelHandlers
}

// createTestConnectionService wires a connection service against a mock
// channel and captures the listeners it registers, so tests can drive pushes
// the way the transport would.
func createTestConnectionService(t *testing.T) connectionServiceFixtures {
	channel := mockSvc.NewMockChannel(t)
	assignments := mockUC.NewMockAssignmentUsecase(t)
	creds := mockSvc.NewMockCredentialStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handlers := &channelHandlers{}
	unsub := service.Unsubscribe(func() {})

	channel.EXPECT().OnNewAssignment(mock.Anything).
		Run(func(fn func(*entity.DeliveryAssignment)) { handlers.newAssignment = fn }).
		Return(unsub).Once()
	channel.EXPECT().OnAssignmentUpdate(mock.Anything).
		Run(func(fn func(*service.AssignmentUpdateEvent)) { handlers.update = fn }).
		Return(unsub).Once()
	channel.EXPECT().OnNotification(mock.Anything).
		Run(func(fn func(*service.NotificationEvent)) { handlers.notification = fn }).
		Return(unsub).Once()
	channel.EXPECT().OnPhaseChange(mock.Anything).
		Run(func(fn func(entity.ConnectionState)) { handlers.phaseChange = fn }).
		Return(unsub).Once()
	channel.EXPECT().OnForcedLogout(mock.Anything).
		Run(func(fn func()) { handlers.forcedLogout = fn }).
		Return(unsub).Once()

	return connectionServiceFixtures{
		service:     NewConnectionService(channel, assignments, creds, logger),
		channel:     channel,
		assignments: assignments,
		creds:       creds,
		handlers:    handlers,
	}
}

func TestConnectionService_Connect_BootstrapsAssignments(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.channel.EXPECT().Connect(ctx).Return(nil).Once()
	fx.assignments.EXPECT().Bootstrap(ctx).Return(nil).Once()

	require.NoError(t, fx.service.Connect(ctx))
}

func TestConnectionService_Connect_BootstrapFailureTolerated(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.channel.EXPECT().Connect(ctx).Return(nil).Once()
	fx.assignments.EXPECT().Bootstrap(ctx).Return(domainerrors.ErrTimeout).Once()

	// The channel stays up; the assignment set heals on the next refresh.
	require.NoError(t, fx.service.Connect(ctx))
}

func TestConnectionService_Connect_ChannelFailurePropagates(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.channel.EXPECT().Connect(ctx).Return(domainerrors.ErrAuthentication).Once()

	err := fx.service.Connect(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))
	fx.assignments.AssertNotCalled(t, "Bootstrap", mock.Anything)
}

func TestConnectionService_SetCourierStatus_AnnouncesToDispatch(t *testing.T) {
	fx := createTestConnectionService(t)

	fx.channel.EXPECT().IsConnected().Return(true).Once()
	fx.channel.EXPECT().
		Send(service.MessageStatusChange, map[string]string{"status": "online"}).
		Return(nil).Once()

	require.NoError(t, fx.service.SetCourierStatus(context.Background(), entity.CourierOnline))
}

func TestConnectionService_SetCourierStatus_NotConnected(t *testing.T) {
	fx := createTestConnectionService(t)

	fx.channel.EXPECT().IsConnected().Return(false).Once()

	err := fx.service.SetCourierStatus(context.Background(), entity.CourierBusy)

	assert.True(t, errors.Is(err, domainerrors.ErrNotConnected))
	fx.channel.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestConnectionService_SetCourierStatus_InvalidValue(t *testing.T) {
	fx := createTestConnectionService(t)

	err := fx.service.SetCourierStatus(context.Background(), entity.CourierStatus("sleeping"))

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.channel.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestConnectionService_PushedAssignmentReachesLifecycle(t *testing.T) {
	fx := createTestConnectionService(t)
	assignment := availableAssignment(uuid.New())

	fx.assignments.EXPECT().IngestAssignment(mock.Anything, assignment).Return(nil).Once()

	fx.handlers.newAssignment(assignment)
}

func TestConnectionService_PushedUpdateReachesLifecycle(t *testing.T) {
	fx := createTestConnectionService(t)
	id := uuid.New()

	fx.assignments.EXPECT().
		ApplyRemoteUpdate(mock.Anything, id, entity.StatusCancelled).
		Return(nil).Once()

	fx.handlers.update(&service.AssignmentUpdateEvent{
		AssignmentID: id,
		Status:       entity.StatusCancelled,
	})

	// A nil event is a transport glitch, not a reason to touch the lifecycle.
	fx.handlers.update(nil)
}

func TestConnectionService_Notifications_NewestFirstAndCapped(t *testing.T) {
	fx := createTestConnectionService(t)

	for i := 1; i <= notificationKeep+5; i++ {
		fx.handlers.notification(&service.NotificationEvent{
			Title: fmt.Sprintf("notification %d", i),
		})
	}

	got := fx.service.Notifications()

	require.Len(t, got, notificationKeep)
	assert.Equal(t, fmt.Sprintf("notification %d", notificationKeep+5), got[0].Title)
	assert.Equal(t, "notification 6", got[len(got)-1].Title)
}

func TestConnectionService_ForcedLogoutSurfacesNotification(t *testing.T) {
	fx := createTestConnectionService(t)

	fx.handlers.forcedLogout()

	got := fx.service.Notifications()
	require.Len(t, got, 1)
	assert.Equal(t, "Signed out", got[0].Title)
	assert.Equal(t, "high", got[0].Priority)
}

func TestConnectionService_StatusDelegatesToChannel(t *testing.T) {
	fx := createTestConnectionService(t)
	connectedAt := time.Now()
	state := entity.ConnectionState{
		Phase:             entity.PhaseReconnecting,
		ReconnectAttempts: 3,
		ConnectedAt:       &connectedAt,
	}

	fx.channel.EXPECT().State().Return(state).Once()

	assert.Equal(t, state, fx.service.Status())
}

func TestConnectionService_InstallCredentialDelegates(t *testing.T) {
	fx := createTestConnectionService(t)

	fx.creds.EXPECT().SetToken("token-abc").Return(nil).Once()

	require.NoError(t, fx.service.InstallCredential("token-abc"))
}
