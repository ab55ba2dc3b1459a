package channel

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"courierd/config"
	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/entity"
	"courierd/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// Close codes the server uses to terminate a session for good. They clear
// the local credential and never trigger the reconnect loop.
const (
	closeUnauthorized      = 4001
	closeCredentialRevoked = 4003
)

// Manager maintains exactly one logical persistent connection per
// authenticated session.
type Manager struct {
	cfg    channelConfig
	dialer service.ChannelDialer
	creds  service.CredentialStore
	logger *slog.Logger

	// connectMu serializes explicit Connect calls so concurrent callers
	// observe the idempotent contract instead of racing dials.
	connectMu sync.Mutex

	mu    sync.Mutex
	conn  service.ChannelConn
	state entity.ConnectionState
	// generation invalidates read/ping/reconnect loops of torn-down
	// connections so they can never resurrect sockets or timers.
	generation uint64

	listeners listenerRegistry
}

type channelConfig struct {
	url                  string
	ackTimeout           time.Duration
	reconnectInterval    time.Duration
	maxReconnectAttempts int
	pingInterval         time.Duration
}

// NewManager creates the connection manager. The transport dialer is
// injected so the reconnection state machine is testable with a fake.
func NewManager(cfg *config.Config, dialer service.ChannelDialer, creds service.CredentialStore, logger *slog.Logger) *Manager {
	channelCfg := channelConfig{
		url:                  cfg.Channel.URL,
		ackTimeout:           cfg.Channel.AckTimeout,
		reconnectInterval:    cfg.Channel.ReconnectInterval,
		maxReconnectAttempts: cfg.Channel.MaxReconnectAttempts,
		pingInterval:         cfg.Channel.PingInterval,
	}
	if channelCfg.ackTimeout <= 0 {
		channelCfg.ackTimeout = 10 * time.Second
	}
	if channelCfg.reconnectInterval <= 0 {
		channelCfg.reconnectInterval = 5 * time.Second
	}
	if channelCfg.maxReconnectAttempts <= 0 {
		channelCfg.maxReconnectAttempts = 5
	}
	if channelCfg.pingInterval <= 0 {
		channelCfg.pingInterval = 30 * time.Second
	}

	return &Manager{
		cfg:    channelCfg,
		dialer: dialer,
		creds:  creds,
		logger: logger,
		state:  entity.ConnectionState{Phase: entity.PhaseDisconnected},
	}
}

// Connect opens the channel. It is idempotent: when already connected it
// returns immediately. A successful explicit connect always resets the
// reconnect budget, which is also the only way out of the failed phase.
func (m *Manager) Connect(ctx context.Context) error {
	m.connectMu.Lock()
	defer m.connectMu.Unlock()

	m.mu.Lock()
	if m.state.Phase == entity.PhaseConnected {
		m.mu.Unlock()

		return nil
	}
	m.generation++
	m.setStateLocked(entity.ConnectionState{Phase: entity.PhaseConnecting})
	m.mu.Unlock()

	if err := m.establish(ctx); err != nil {
		m.mu.Lock()
		m.setStateLocked(entity.ConnectionState{
			Phase:     entity.PhaseDisconnected,
			LastError: err.Error(),
		})
		m.mu.Unlock()

		return err
	}

	return nil
}

// establish authenticates, dials and waits for the server's session ack.
func (m *Manager) establish(ctx context.Context) error {
	token, err := m.creds.BearerToken()
	if err != nil {
		return err
	}

	dialCtx, cancel := context.WithTimeout(ctx, m.cfg.ackTimeout)
	defer cancel()

	conn, err := m.dialer.Dial(dialCtx, m.cfg.url, token)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domainerrors.ErrTimeout.WithDetails("channel dial timed out")
		}

		return err
	}

	if err := m.awaitSessionAck(conn); err != nil {
		_ = conn.Close()

		return err
	}

	now := time.Now()

	m.mu.Lock()
	if m.state.Phase != entity.PhaseConnecting && m.state.Phase != entity.PhaseReconnecting {
		// Torn down while the handshake was in flight.
		m.mu.Unlock()
		_ = conn.Close()

		return domainerrors.ErrNotConnected.WithDetails("connection aborted during handshake")
	}
	m.conn = conn
	m.generation++
	generation := m.generation
	m.setStateLocked(entity.ConnectionState{
		Phase:       entity.PhaseConnected,
		ConnectedAt: &now,
	})
	m.mu.Unlock()

	go m.readLoop(conn, generation)
	go m.pingLoop(generation)

	return nil
}

// awaitSessionAck blocks until the server acknowledges the session or the
// bounded window elapses.
func (m *Manager) awaitSessionAck(conn service.ChannelConn) error {
	type readResult struct {
		frame *envelope
		err   error
	}

	results := make(chan readResult, 1)
	go func() {
		for {
			data, err := conn.ReadMessage()
			if err != nil {
				results <- readResult{err: err}

				return
			}
			frame, err := decodeFrame(data)
			if err != nil {
				continue
			}
			if frame.Type == kindSessionAck {
				results <- readResult{frame: frame}

				return
			}
		}
	}()

	timer := time.NewTimer(m.cfg.ackTimeout)
	defer timer.Stop()

	select {
	case result := <-results:
		if result.err != nil {
			return errors.Wrap(result.err, "channel closed before session ack")
		}

		return nil
	case <-timer.C:
		return domainerrors.ErrTimeout.WithDetails("no session ack within bounded window")
	}
}

// Disconnect closes the channel locally. Safe to call at any time; loops of
// the torn-down connection observe the stale generation and exit.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	m.generation++
	conn := m.conn
	m.conn = nil
	m.setStateLocked(entity.ConnectionState{Phase: entity.PhaseDisconnected})
	m.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

// IsConnected reports whether the channel is currently up.
func (m *Manager) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state.Phase == entity.PhaseConnected
}

// State returns a snapshot of the connection state.
func (m *Manager) State() entity.ConnectionState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Send marshals payload into a frame and writes it. It silently no-ops while
// disconnected: this channel is at-most-once, best-effort by design.
func (m *Manager) Send(kind service.MessageKind, payload any) error {
	m.mu.Lock()
	conn := m.conn
	connected := m.state.Phase == entity.PhaseConnected
	m.mu.Unlock()

	if !connected || conn == nil {
		m.logger.Debug("Dropping outbound frame, channel is down",
			slog.String("kind", string(kind)),
		)

		return nil
	}

	data, err := encodeFrame(kind, payload)
	if err != nil {
		return err
	}

	if err := conn.WriteMessage(data); err != nil {
		m.logger.Warn("Channel write failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "channel write")
	}

	return nil
}

// readLoop consumes inbound frames until the connection dies.
func (m *Manager) readLoop(conn service.ChannelConn, generation uint64) {
	for {
		data, err := conn.ReadMessage()
		if err != nil {
			m.handleReadError(generation, err)

			return
		}

		frame, err := decodeFrame(data)
		if err != nil {
			m.logger.Debug("Discarding malformed frame", slog.Any("error", err))

			continue
		}
		m.dispatch(frame)
	}
}

// handleReadError classifies a dead connection: forced session termination,
// graceful server close, or abnormal drop (which starts the reconnect loop).
func (m *Manager) handleReadError(generation uint64, err error) {
	m.mu.Lock()
	if generation != m.generation {
		// Already torn down locally.
		m.mu.Unlock()

		return
	}

	conn := m.conn
	m.conn = nil
	m.generation++
	newGeneration := m.generation

	switch {
	case isForcedClose(err):
		m.logger.Warn("Server terminated the session, clearing credentials",
			slog.Any("error", err),
		)
		m.setStateLocked(entity.ConnectionState{
			Phase:     entity.PhaseDisconnected,
			LastError: err.Error(),
		})
		m.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
		m.creds.Clear()
		m.listeners.emitForcedLogout()

	case isServerClose(err):
		m.logger.Info("Server closed the channel", slog.Any("error", err))
		m.setStateLocked(entity.ConnectionState{
			Phase:     entity.PhaseDisconnected,
			LastError: err.Error(),
		})
		m.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}

	default:
		m.logger.Warn("Channel dropped abnormally, reconnecting",
			slog.Any("error", err),
		)
		m.setStateLocked(entity.ConnectionState{
			Phase:     entity.PhaseReconnecting,
			LastError: err.Error(),
		})
		m.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
		go m.reconnectLoop(newGeneration)
	}
}

// reconnectLoop retries at a fixed interval up to the configured bound, then
// latches the failed phase. Only an explicit Connect leaves failed.
func (m *Manager) reconnectLoop(generation uint64) {
	for {
		time.Sleep(m.cfg.reconnectInterval)

		m.mu.Lock()
		if generation != m.generation || m.state.Phase != entity.PhaseReconnecting {
			m.mu.Unlock()

			return
		}
		if m.state.ReconnectAttempts >= m.cfg.maxReconnectAttempts {
			m.logger.Error("Reconnect budget exhausted",
				slog.Int("attempts", m.state.ReconnectAttempts),
			)
			m.setStateLocked(entity.ConnectionState{
				Phase:             entity.PhaseFailed,
				ReconnectAttempts: m.state.ReconnectAttempts,
				LastError:         m.state.LastError,
			})
			m.mu.Unlock()

			return
		}
		attempts := m.state.ReconnectAttempts + 1
		m.setStateLocked(entity.ConnectionState{
			Phase:             entity.PhaseReconnecting,
			ReconnectAttempts: attempts,
			LastError:         m.state.LastError,
		})
		m.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.ackTimeout)
		err := m.establish(ctx)
		cancel()

		if err == nil {
			return
		}

		m.logger.Warn("Reconnect attempt failed",
			slog.Int("attempt", attempts),
			slog.Int("max", m.cfg.maxReconnectAttempts),
			slog.Any("error", err),
		)

		// establish bumps the generation only on success, so a failed try
		// keeps ours valid for the next tick.
		m.mu.Lock()
		if generation != m.generation || m.state.Phase != entity.PhaseReconnecting {
			m.mu.Unlock()

			return
		}
		m.state.LastError = err.Error()
		m.mu.Unlock()
	}
}

// pingLoop emits liveness pings while the connection is alive.
func (m *Manager) pingLoop(generation uint64) {
	ticker := time.NewTicker(m.cfg.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		stale := generation != m.generation
		m.mu.Unlock()
		if stale {
			return
		}

		_ = m.Send(service.MessagePing, nil)
	}
}

// dispatch decodes an inbound frame and fans it out to listeners.
func (m *Manager) dispatch(frame *envelope) {
	switch frame.Type {
	case service.MessageNewAssignment:
		assignment, err := decodePayload[entity.DeliveryAssignment](frame)
		if err != nil {
			m.logger.Warn("Malformed new_assignment payload", slog.Any("error", err))

			return
		}
		m.listeners.emitNewAssignment(assignment)

	case service.MessageAssignmentUpdate:
		update, err := decodePayload[service.AssignmentUpdateEvent](frame)
		if err != nil {
			m.logger.Warn("Malformed assignment_update payload", slog.Any("error", err))

			return
		}
		m.listeners.emitAssignmentUpdate(update)

	case service.MessageNotification:
		notification, err := decodePayload[service.NotificationEvent](frame)
		if err != nil {
			m.logger.Warn("Malformed notification payload", slog.Any("error", err))

			return
		}
		m.listeners.emitNotification(notification)

	case kindSessionAck:
		// Duplicate ack after connect, nothing to do.

	default:
		m.logger.Debug("Ignoring unknown frame kind",
			slog.String("kind", string(frame.Type)),
		)
	}
}

// setStateLocked replaces the state and notifies phase listeners. Callers
// hold m.mu; listeners are invoked asynchronously so they can call back into
// the manager.
func (m *Manager) setStateLocked(state entity.ConnectionState) {
	m.state = state
	m.listeners.emitPhaseChange(state)
}

// OnNewAssignment registers a listener for pushed assignments.
func (m *Manager) OnNewAssignment(fn func(*entity.DeliveryAssignment)) service.Unsubscribe {
	return m.listeners.addNewAssignment(fn)
}

// OnAssignmentUpdate registers a listener for pushed status updates.
func (m *Manager) OnAssignmentUpdate(fn func(*service.AssignmentUpdateEvent)) service.Unsubscribe {
	return m.listeners.addAssignmentUpdate(fn)
}

// OnNotification registers a listener for out-of-band notifications.
func (m *Manager) OnNotification(fn func(*service.NotificationEvent)) service.Unsubscribe {
	return m.listeners.addNotification(fn)
}

// OnPhaseChange registers a listener for connection-state transitions.
func (m *Manager) OnPhaseChange(fn func(entity.ConnectionState)) service.Unsubscribe {
	return m.listeners.addPhaseChange(fn)
}

// OnForcedLogout registers a listener for server-forced session termination.
func (m *Manager) OnForcedLogout(fn func()) service.Unsubscribe {
	return m.listeners.addForcedLogout(fn)
}

func decodePayload[T any](frame *envelope) (*T, error) {
	var payload T
	if err := json.Unmarshal(frame.Payload, &payload); err != nil {
		return nil, errors.Wrapf(err, "decode %s payload", frame.Type)
	}

	return &payload, nil
}

// isForcedClose reports whether the server terminated the session for good.
func isForcedClose(err error) bool {
	var closeErr *websocket.CloseError
	if !errors.As(err, &closeErr) {
		return false
	}

	switch closeErr.Code {
	case websocket.ClosePolicyViolation, closeUnauthorized, closeCredentialRevoked:
		return true
	default:
		return false
	}
}

// isServerClose reports whether the server closed the channel gracefully.
func isServerClose(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
