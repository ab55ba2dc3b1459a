// Package backend implements the request/response client for the dispatch
// server. Lifecycle transitions go through here and nowhere else; the
// persistent channel is never used for state-changing requests.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"courierd/config"
	deliverycontext "courierd/internal/delivery/context"
	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/entity"
	"courierd/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// envelope is the server's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

type client struct {
	baseURL    string
	httpClient *http.Client
	creds      service.CredentialStore
	logger     *slog.Logger
}

// NewClient creates the dispatch backend client.
func NewClient(cfg *config.Config, creds service.CredentialStore, logger *slog.Logger) service.AssignmentBackend {
	timeout := cfg.Backend.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &client{
		baseURL: cfg.Backend.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		creds:  creds,
		logger: logger,
	}
}

// FetchAssignments returns the server's current view of the courier's assignments.
func (c *client) FetchAssignments(ctx context.Context) ([]*entity.DeliveryAssignment, error) {
	var assignments []*entity.DeliveryAssignment
	if err := c.do(ctx, http.MethodGet, "/assignments", nil, &assignments); err != nil {
		return nil, err
	}

	return assignments, nil
}

// FetchAssignment returns the server's record for one assignment.
func (c *client) FetchAssignment(ctx context.Context, id uuid.UUID) (*entity.DeliveryAssignment, error) {
	return c.doAssignment(ctx, http.MethodGet, "/assignments/"+id.String(), nil)
}

// Accept claims an available assignment for this courier.
func (c *client) Accept(ctx context.Context, id uuid.UUID) (*entity.DeliveryAssignment, error) {
	return c.doAssignment(ctx, http.MethodPost, "/assignments/"+id.String()+"/accept", nil)
}

// ConfirmPickup reports the package as collected.
func (c *client) ConfirmPickup(ctx context.Context, id uuid.UUID, notes string) (*entity.DeliveryAssignment, error) {
	body := map[string]string{}
	if notes != "" {
		body["notes"] = notes
	}

	return c.doAssignment(ctx, http.MethodPost, "/assignments/"+id.String()+"/pickup", body)
}

// ConfirmDelivery submits the recipient's confirmation code for verification.
func (c *client) ConfirmDelivery(ctx context.Context, id uuid.UUID, code, notes string) (*entity.DeliveryAssignment, error) {
	body := map[string]string{"confirmation_code": code}
	if notes != "" {
		body["notes"] = notes
	}

	return c.doAssignment(ctx, http.MethodPost, "/assignments/"+id.String()+"/deliver", body)
}

// Cancel withdraws from an assignment with a reason.
func (c *client) Cancel(ctx context.Context, id uuid.UUID, reason string) (*entity.DeliveryAssignment, error) {
	return c.doAssignment(ctx, http.MethodPost, "/assignments/"+id.String()+"/cancel", map[string]string{"reason": reason})
}

func (c *client) doAssignment(ctx context.Context, method, path string, body any) (*entity.DeliveryAssignment, error) {
	var assignment entity.DeliveryAssignment
	if err := c.do(ctx, method, path, body, &assignment); err != nil {
		return nil, err
	}

	return &assignment, nil
}

// do runs one round trip and decodes the envelope's data into out. HTTP
// statuses are mapped onto the domain error taxonomy so callers never see
// transport detail.
func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.creds.BearerToken()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return domainerrors.ErrTimeout.WithDetails(err.Error())
		}

		return errors.Wrap(err, "backend request failed")
	}
	defer resp.Body.Close()

	var env envelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil && resp.StatusCode < 400 {
		return errors.Wrap(decodeErr, "decode backend response")
	}

	if appErr := c.statusError(ctx, resp.StatusCode, env.Message); appErr != nil {
		return appErr
	}

	if !env.Success {
		return domainerrors.ErrInternalError.WithDetails(env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "decode backend payload")
		}
	}

	return nil
}

func (c *client) statusError(ctx context.Context, status int, message string) error {
	switch {
	case status < 400:
		return nil
	case status == http.StatusUnauthorized:
		return domainerrors.ErrAuthentication.WithDetails(message)
	case status == http.StatusNotFound:
		return domainerrors.ErrNotFound.WithDetails(message)
	case status == http.StatusConflict:
		return domainerrors.ErrConflict.WithDetails(message)
	case status == http.StatusUnprocessableEntity:
		return domainerrors.ErrInvalidConfirmation.WithDetails(message)
	case status == http.StatusGatewayTimeout:
		return domainerrors.ErrTimeout.WithDetails(message)
	default:
		logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
		logger.Warn("Backend returned unexpected status",
			slog.Int("status", status),
			slog.String("message", message),
		)

		return domainerrors.ErrInternalError.WithDetails(message)
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }

	return errors.As(err, &netErr) && netErr.Timeout()
}
