// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rxradar/internal/delivery/http/middleware"
	"rxradar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler       *handler.SearchHandler
	DrugHandler         *handler.DrugHandler
	AccessHandler       *handler.AccessHandler
	BillingHandler      *handler.BillingHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler       *handler.SearchHandler
	drugHandler         *handler.DrugHandler
	accessHandler       *handler.AccessHandler
	billingHandler      *handler.BillingHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:       params.SearchHandler,
		drugHandler:         params.DrugHandler,
		accessHandler:       params.AccessHandler,
		billingHandler:      params.BillingHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API routes that require authentication
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.POST("/search", r.searchHandler.Search)
		apiGroup.GET("/drugs/suggest", r.drugHandler.Suggest)
		apiGroup.GET("/access", r.accessHandler.GetAccessStatus)
	}

	// Payment-provider webhooks, verified upstream at the gateway
	webhookGroup := e.Group("/webhooks")
	{
		webhookGroup.POST("/billing", r.billingHandler.HandleWebhook)
	}
}
