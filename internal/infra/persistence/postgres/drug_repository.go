package postgres

import (
	"context"
	"strings"

	"rxradar/internal/domain/entity"
	"rxradar/internal/domain/repository"
	"rxradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// drugRepository implements the repository.DrugRepository interface.
type drugRepository struct {
	db *gorm.DB
}

// NewDrugRepository is the constructor for drugRepository.
func NewDrugRepository(db *gorm.DB) repository.DrugRepository {
	return &drugRepository{
		db: db,
	}
}

// FindByBrandName retrieves a drug by its canonical brand name. Brand names
// are stored uppercased, so normalizing the input gives a case-insensitive
// exact match without a function index.
func (repo *drugRepository) FindByBrandName(ctx context.Context, brandName string) (*entity.Drug, error) {
	var drugM model.DrugModel

	if err := repo.db.WithContext(ctx).
		Where("brand_name = ?", strings.ToUpper(strings.TrimSpace(brandName))).
		First(&drugM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDrugNotFound
		}

		return nil, errors.Wrap(err, "failed to find drug by brand name")
	}

	return toDrugDomain(&drugM), nil
}

// SuggestByName retrieves drugs whose brand name contains the query,
// alphabetically ordered, capped at limit.
func (repo *drugRepository) SuggestByName(ctx context.Context, query string, limit int) ([]*entity.Drug, error) {
	var drugModels []*model.DrugModel

	pattern := "%" + strings.ToUpper(strings.TrimSpace(query)) + "%"
	if err := repo.db.WithContext(ctx).
		Where("brand_name LIKE ?", pattern).
		Order("brand_name ASC").
		Limit(limit).
		Find(&drugModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to suggest drugs by name")
	}

	drugs := make([]*entity.Drug, 0, len(drugModels))
	for _, drugM := range drugModels {
		drugs = append(drugs, toDrugDomain(drugM))
	}

	return drugs, nil
}

// --- Mapper Functions ---

// toDrugDomain converts a GORM DrugModel to a domain Drug entity.
func toDrugDomain(data *model.DrugModel) *entity.Drug {
	if data == nil {
		return nil
	}

	return &entity.Drug{
		ID:                  data.ID,
		BrandName:           data.BrandName,
		TherapeuticClass:    data.TherapeuticClass,
		ControlledSubstance: data.ControlledSubstance,
	}
}
