// Package handler contains the HTTP handlers of the control API.
package handler

import (
	"log/slog"
	"net/http"

	"courierd/internal/delivery/http/response"
	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssignmentHandler holds dependencies for the assignment lifecycle handlers.
type AssignmentHandler struct {
	uc     usecase.AssignmentUsecase
	logger *slog.Logger
}

// NewAssignmentHandler is the constructor for AssignmentHandler, injected by Fx.
func NewAssignmentHandler(uc usecase.AssignmentUsecase, logger *slog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// PickupRequest represents the request body for confirming a pickup.
type PickupRequest struct {
	Notes string `json:"notes"`
}

// DeliveryRequest represents the request body for confirming a delivery.
type DeliveryRequest struct {
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
	Notes            string `json:"notes"`
}

// CancelRequest represents the request body for cancelling an assignment.
type CancelRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// List handles retrieving the active assignment set.
func (h *AssignmentHandler) List(c echo.Context) error {
	assignments, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assignments, "Assignments retrieved successfully")
}

// Accept handles claiming an available assignment.
func (h *AssignmentHandler) Accept(c echo.Context) error {
	id, err := h.assignmentID(c)
	if err != nil {
		return err
	}

	assignment, err := h.uc.Accept(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assignment, "Assignment accepted")
}

// Pickup handles confirming the package was collected.
func (h *AssignmentHandler) Pickup(c echo.Context) error {
	id, err := h.assignmentID(c)
	if err != nil {
		return err
	}

	var req PickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup input")
	}

	assignment, err := h.uc.ConfirmPickup(c.Request().Context(), id, req.Notes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assignment, "Pickup confirmed")
}

// Deliver handles finalizing the delivery with the recipient's code.
func (h *AssignmentHandler) Deliver(c echo.Context) error {
	id, err := h.assignmentID(c)
	if err != nil {
		return err
	}

	var req DeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	assignment, err := h.uc.ConfirmDelivery(c.Request().Context(), id, req.ConfirmationCode, req.Notes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assignment, "Delivery confirmed")
}

// Cancel handles withdrawing from an assignment.
func (h *AssignmentHandler) Cancel(c echo.Context) error {
	id, err := h.assignmentID(c)
	if err != nil {
		return err
	}

	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	assignment, err := h.uc.Cancel(c.Request().Context(), id, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assignment, "Assignment cancelled")
}

// Ack handles removing a finished assignment from the active set.
func (h *AssignmentHandler) Ack(c echo.Context) error {
	id, err := h.assignmentID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Ack(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Assignment acknowledged")
}

func (h *AssignmentHandler) assignmentID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("assignment id must be a UUID")
	}

	return id, nil
}
