// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"courierd/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AssignmentHandler *handler.AssignmentHandler
	TrackingHandler   *handler.TrackingHandler
	ConnectionHandler *handler.ConnectionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	assignmentHandler *handler.AssignmentHandler
	trackingHandler   *handler.TrackingHandler
	connectionHandler *handler.ConnectionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		assignmentHandler: params.AssignmentHandler,
		trackingHandler:   params.TrackingHandler,
		connectionHandler: params.ConnectionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Assignment lifecycle routes
	assignmentGroup := e.Group("/assignments")
	{
		assignmentGroup.GET("", r.assignmentHandler.List)
		assignmentGroup.POST("/:id/accept", r.assignmentHandler.Accept)
		assignmentGroup.POST("/:id/pickup", r.assignmentHandler.Pickup)
		assignmentGroup.POST("/:id/deliver", r.assignmentHandler.Deliver)
		assignmentGroup.POST("/:id/cancel", r.assignmentHandler.Cancel)
		assignmentGroup.DELETE("/:id", r.assignmentHandler.Ack)
	}

	// Location tracking routes
	trackingGroup := e.Group("/tracking")
	{
		trackingGroup.GET("", r.trackingHandler.Status)
		trackingGroup.POST("/start", r.trackingHandler.Start)
		trackingGroup.POST("/stop", r.trackingHandler.Stop)
	}

	// Connectivity routes
	connectionGroup := e.Group("/connection")
	{
		connectionGroup.GET("", r.connectionHandler.Status)
		connectionGroup.POST("/connect", r.connectionHandler.Connect)
		connectionGroup.POST("/disconnect", r.connectionHandler.Disconnect)
	}

	// Courier availability, credentials and notifications
	e.POST("/status", r.connectionHandler.SetCourierStatus)
	e.POST("/credentials", r.connectionHandler.InstallCredential)
	e.GET("/notifications", r.connectionHandler.Notifications)
}
