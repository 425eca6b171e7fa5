// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"returnwiz/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReturnHandler *handler.ReturnHandler
	TenantHandler *handler.TenantHandler
	HealthHandler *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	returnHandler *handler.ReturnHandler
	tenantHandler *handler.TenantHandler
	healthHandler *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		returnHandler: params.ReturnHandler,
		tenantHandler: params.TenantHandler,
		healthHandler: params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Health)

	// Customer-facing return portal
	returnsGroup := e.Group("/returns")
	{
		returnsGroup.POST("/search", r.returnHandler.SearchOrder)
		returnsGroup.POST("", r.returnHandler.CreateReturn)
		returnsGroup.GET("", r.returnHandler.ListReturns)
	}

	// Merchant-facing tenant management
	e.POST("/tenants/register", r.tenantHandler.Register)
	e.GET("/tenants", r.tenantHandler.List)
	e.POST("/login", r.tenantHandler.Login)
}
