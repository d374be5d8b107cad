package handler

import (
	"log/slog"
	"net/http"

	"rxradar/internal/delivery/http/response"
	domainerrors "rxradar/internal/domain/errors"
	"rxradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BillingHandlerParams holds dependencies for BillingHandler, injected by Fx.
type BillingHandlerParams struct {
	fx.In

	EntitlementUC usecase.EntitlementUsecase
	Logger        *slog.Logger
}

// BillingHandler receives subscription lifecycle webhooks from the payment
// provider. Transport authentication for this endpoint is handled upstream
// at the gateway, so events arrive pre-verified.
type BillingHandler struct {
	entitlementUC usecase.EntitlementUsecase
	logger        *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler
func NewBillingHandler(params BillingHandlerParams) *BillingHandler {
	return &BillingHandler{
		entitlementUC: params.EntitlementUC,
		logger:        params.Logger,
	}
}

// BillingWebhookRequest represents the parsed payment-provider event payload.
type BillingWebhookRequest struct {
	Kind           string    `json:"kind" validate:"required"`
	UserID         uuid.UUID `json:"user_id" validate:"required"`
	PlanCode       string    `json:"plan_code"`
	SubscriptionID string    `json:"subscription_id"`
}

// HandleWebhook applies a billing event to the user's entitlement state.
func (h *BillingHandler) HandleWebhook(c echo.Context) error {
	var req BillingWebhookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid billing event payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	event := &usecase.BillingEvent{
		Kind:           usecase.BillingEventKind(req.Kind),
		UserID:         req.UserID,
		PlanCode:       req.PlanCode,
		SubscriptionID: req.SubscriptionID,
	}

	if err := h.entitlementUC.ApplyBillingEvent(c.Request().Context(), event); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "processed"})
}
