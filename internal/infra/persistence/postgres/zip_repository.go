// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"rxradar/internal/domain/entity"
	"rxradar/internal/domain/repository"
	"rxradar/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// zipRepository implements the repository.ZipRepository interface.
type zipRepository struct {
	db *gorm.DB
}

// NewZipRepository is the constructor for zipRepository.
func NewZipRepository(db *gorm.DB) repository.ZipRepository {
	return &zipRepository{
		db: db,
	}
}

// FindByZip retrieves the geographic anchor for a 5-digit postal code.
func (repo *zipRepository) FindByZip(ctx context.Context, zip string) (*entity.GeoAnchor, error) {
	var zipM model.ZipCodeModel

	if err := repo.db.WithContext(ctx).
		Where("zip = ?", zip).
		First(&zipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrZipNotFound
		}

		return nil, errors.Wrap(err, "failed to find zip code")
	}

	return &entity.GeoAnchor{
		Zip:   zipM.Zip,
		City:  zipM.City,
		State: zipM.State,
		Point: orb.Point{zipM.Longitude, zipM.Latitude},
	}, nil
}
