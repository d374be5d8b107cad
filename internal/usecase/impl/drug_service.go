package impl

import (
	"context"
	"strings"

	"rxradar/config"
	"rxradar/internal/domain/repository"
	"rxradar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type drugService struct {
	drugRepo repository.DrugRepository
	config   *config.Config
}

// DrugServiceParams holds dependencies for DrugService, injected by Fx.
type DrugServiceParams struct {
	fx.In

	DrugRepo repository.DrugRepository
	Config   *config.Config
}

// NewDrugService creates a new drug service instance
func NewDrugService(params DrugServiceParams) usecase.DrugUsecase {
	return &drugService{
		drugRepo: params.DrugRepo,
		config:   params.Config,
	}
}

// Suggest returns autocomplete entries for a partial brand name. Trivial
// prefixes short-circuit to an empty list to avoid full-table scans.
func (s *drugService) Suggest(ctx context.Context, query string, limit int) ([]*usecase.DrugSuggestion, error) {
	query = strings.TrimSpace(query)
	if len(query) < s.config.Search.SuggestMinChars {
		return []*usecase.DrugSuggestion{}, nil
	}

	if limit <= 0 || limit > s.config.Search.SuggestMaxResults {
		limit = s.config.Search.SuggestMaxResults
	}

	drugs, err := s.drugRepo.SuggestByName(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest drugs by name")
	}

	suggestions := make([]*usecase.DrugSuggestion, 0, len(drugs))
	for _, drug := range drugs {
		suggestions = append(suggestions, &usecase.DrugSuggestion{
			DrugID:           drug.ID,
			BrandName:        drug.BrandName,
			TherapeuticClass: drug.TherapeuticClass,
		})
	}

	return suggestions, nil
}
