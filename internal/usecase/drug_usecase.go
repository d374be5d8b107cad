package usecase

import (
	"context"
)

// DrugSuggestion is one autocomplete entry from the medication catalog.
type DrugSuggestion struct {
	DrugID           int64  `json:"drug_id"`
	BrandName        string `json:"brand_name"`
	TherapeuticClass string `json:"therapeutic_class"`
}

// DrugUsecase exposes the medication catalog to the presentation layer.
type DrugUsecase interface {
	// Suggest returns catalog entries whose brand name contains the query,
	// alphabetically ordered. Queries shorter than the configured minimum
	// short-circuit to an empty list without touching storage.
	Suggest(ctx context.Context, query string, limit int) ([]*DrugSuggestion, error)
}
