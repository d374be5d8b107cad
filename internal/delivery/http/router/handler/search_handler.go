package handler

import (
	"log/slog"
	"net/http"

	"rxradar/internal/delivery/http/middleware"
	"rxradar/internal/delivery/http/response"
	domainerrors "rxradar/internal/domain/errors"
	"rxradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for prescriber search handlers
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchRequest represents the request body for a prescriber search. The flat
// pharmaName/zip/lat/lng/radius fields are the standard single-drug shape;
// the drugs/anchors arrays extend it into a compound search and merge with
// the flat fields when both are sent. Presence of a drug and an anchor is
// enforced by the usecase so the error codes stay uniform across shapes.
type SearchRequest struct {
	PharmaName string   `json:"pharmaName"`
	Zip        string   `json:"zip"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Radius     float64  `json:"radius"`

	Drugs       []string               `json:"drugs" validate:"omitempty,dive,min=1"`
	Anchors     []usecase.SearchAnchor `json:"anchors"`
	RadiusMiles float64                `json:"radius_miles"`
}

// toInput flattens the request into the usecase input, folding the single
// flat drug/anchor in front of the compound arrays.
func (req *SearchRequest) toInput() *usecase.SearchInput {
	drugs := make([]string, 0, len(req.Drugs)+1)
	if req.PharmaName != "" {
		drugs = append(drugs, req.PharmaName)
	}
	drugs = append(drugs, req.Drugs...)

	anchors := make([]usecase.SearchAnchor, 0, len(req.Anchors)+1)
	if req.Zip != "" || req.Lat != nil || req.Lng != nil {
		anchors = append(anchors, usecase.SearchAnchor{Zip: req.Zip, Lat: req.Lat, Lng: req.Lng})
	}
	anchors = append(anchors, req.Anchors...)

	radiusMiles := req.Radius
	if radiusMiles == 0 {
		radiusMiles = req.RadiusMiles
	}

	return &usecase.SearchInput{
		Drugs:       drugs,
		Anchors:     anchors,
		RadiusMiles: radiusMiles,
	}
}

// Search handles a geo-ranked prescriber search for the authenticated user.
func (h *SearchHandler) Search(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	result, err := h.searchUC.Search(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
