package handler

import (
	"log/slog"
	"net/http"

	"courierd/internal/delivery/http/response"
	"courierd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TrackingHandler holds dependencies for the location tracking handlers.
type TrackingHandler struct {
	uc     usecase.TrackingUsecase
	logger *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler, injected by Fx.
func NewTrackingHandler(uc usecase.TrackingUsecase, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{
		uc:     uc,
		logger: logger,
	}
}

// Start handles switching location tracking on.
func (h *TrackingHandler) Start(c echo.Context) error {
	if err := h.uc.StartTracking(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.Status(), "Tracking started")
}

// Stop handles switching location tracking off.
func (h *TrackingHandler) Stop(c echo.Context) error {
	h.uc.StopTracking()

	return response.Success(c, http.StatusOK, h.uc.Status(), "Tracking stopped")
}

// Status handles retrieving the tracking state.
func (h *TrackingHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Status(), "Tracking status retrieved")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
