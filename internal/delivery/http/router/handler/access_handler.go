package handler

import (
	"log/slog"
	"net/http"

	"rxradar/internal/delivery/http/middleware"
	"rxradar/internal/delivery/http/response"
	"rxradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccessHandlerParams holds dependencies for AccessHandler, injected by Fx.
type AccessHandlerParams struct {
	fx.In

	EntitlementUC usecase.EntitlementUsecase
	Logger        *slog.Logger
}

// AccessHandler holds dependencies for entitlement status handlers
type AccessHandler struct {
	entitlementUC usecase.EntitlementUsecase
	logger        *slog.Logger
}

// NewAccessHandler is the constructor for AccessHandler
func NewAccessHandler(params AccessHandlerParams) *AccessHandler {
	return &AccessHandler{
		entitlementUC: params.EntitlementUC,
		logger:        params.Logger,
	}
}

// GetAccessStatus handles retrieving the authenticated user's plan and quota view.
func (h *AccessHandler) GetAccessStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.entitlementUC.GetAccessStatus(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
