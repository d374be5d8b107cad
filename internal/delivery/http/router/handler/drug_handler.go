package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rxradar/internal/delivery/http/response"
	"rxradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DrugHandlerParams holds dependencies for DrugHandler, injected by Fx.
type DrugHandlerParams struct {
	fx.In

	DrugUC usecase.DrugUsecase
	Logger *slog.Logger
}

// DrugHandler holds dependencies for medication catalog handlers
type DrugHandler struct {
	drugUC usecase.DrugUsecase
	logger *slog.Logger
}

// NewDrugHandler is the constructor for DrugHandler
func NewDrugHandler(params DrugHandlerParams) *DrugHandler {
	return &DrugHandler{
		drugUC: params.DrugUC,
		logger: params.Logger,
	}
}

// Suggest handles medication name autocomplete.
func (h *DrugHandler) Suggest(c echo.Context) error {
	query := c.QueryParam("q")

	limit := 0
	if rawLimit := c.QueryParam("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a non-negative integer")
		}
		limit = parsed
	}

	suggestions, err := h.drugUC.Suggest(c.Request().Context(), query, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suggestions)
}
