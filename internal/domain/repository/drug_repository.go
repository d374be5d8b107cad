package repository

import (
	"context"

	"rxradar/internal/domain/entity"
	"rxradar/internal/errors"
)

// Domain-specific errors for the drug catalog.
var (
	// ErrDrugNotFound is returned when no catalog row matches a brand name.
	ErrDrugNotFound = errors.New("drug not found")
)

// DrugRepository reads the medication reference catalog.
type DrugRepository interface {
	// FindByBrandName retrieves a drug by canonical brand name. Matching is
	// case-insensitive via uppercase normalization, exact match only.
	// Returns ErrDrugNotFound when no row matches.
	FindByBrandName(ctx context.Context, brandName string) (*entity.Drug, error)

	// SuggestByName retrieves up to limit drugs whose brand name contains the
	// query (case-insensitive substring), ordered alphabetically.
	SuggestByName(ctx context.Context, query string, limit int) ([]*entity.Drug, error)
}
