package handler

import (
	"log/slog"
	"net/http"

	"courierd/internal/delivery/http/response"
	"courierd/internal/domain/entity"
	"courierd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConnectionHandler holds dependencies for the connectivity handlers.
type ConnectionHandler struct {
	uc     usecase.ConnectionUsecase
	logger *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler, injected by Fx.
func NewConnectionHandler(uc usecase.ConnectionUsecase, logger *slog.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		uc:     uc,
		logger: logger,
	}
}

// CourierStatusRequest represents the request body for announcing availability.
type CourierStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=online busy offline"`
}

// CredentialRequest represents the request body for installing a bearer token.
type CredentialRequest struct {
	Token string `json:"token" validate:"required"`
}

// Status handles retrieving the connection state.
func (h *ConnectionHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Status(), "Connection status retrieved")
}

// Connect handles bringing the channel up.
func (h *ConnectionHandler) Connect(c echo.Context) error {
	if err := h.uc.Connect(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.Status(), "Connected")
}

// Disconnect handles tearing the channel down.
func (h *ConnectionHandler) Disconnect(c echo.Context) error {
	h.uc.Disconnect()

	return response.Success(c, http.StatusOK, h.uc.Status(), "Disconnected")
}

// SetCourierStatus handles announcing availability to dispatch.
func (h *ConnectionHandler) SetCourierStatus(c echo.Context) error {
	var req CourierStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetCourierStatus(c.Request().Context(), entity.CourierStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status}, "Status announced")
}

// InstallCredential handles storing a fresh bearer token.
func (h *ConnectionHandler) InstallCredential(c echo.Context) error {
	var req CredentialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credential input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.InstallCredential(req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Credential installed")
}

// Notifications handles retrieving recent out-of-band notifications.
func (h *ConnectionHandler) Notifications(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Notifications(), "Notifications retrieved")
}
