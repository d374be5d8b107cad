package postgres

import (
	"context"
	"time"

	"rxradar/internal/domain/entity"
	domainerrors "rxradar/internal/domain/errors"
	"rxradar/internal/domain/repository"
	"rxradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accessRepository implements the repository.AccessRepository interface.
type accessRepository struct {
	db *gorm.DB
}

// NewAccessRepository is the constructor for accessRepository.
func NewAccessRepository(db *gorm.DB) repository.AccessRepository {
	return &accessRepository{
		db: db,
	}
}

// GetOrCreate retrieves the access row for a user, creating a FREE row when
// none exists. A concurrent first-time create is absorbed by re-reading
// after a unique violation.
func (repo *accessRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserAccess, error) {
	var accessM model.UserAccessModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&accessM).Error
	if err == nil {
		return toAccessDomain(&accessM), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find user access")
	}

	now := time.Now()
	accessM = model.UserAccessModel{
		UserID:       userID,
		Plan:         string(entity.PlanFree),
		SearchesUsed: 0,
		MonthStart:   now,
	}

	if err := repo.db.WithContext(ctx).Create(&accessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Another request created the row first; read theirs.
			if err := repo.db.WithContext(ctx).
				Where("user_id = ?", userID).
				First(&accessM).Error; err != nil {
				return nil, errors.Wrap(err, "failed to re-read user access after create race")
			}

			return toAccessDomain(&accessM), nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user access")
	}

	return toAccessDomain(&accessM), nil
}

// UpdatePlan upserts the access row. Quota and month window restart on every
// plan change so a new billing cycle begins fresh. Single statement keyed by
// user id: last write wins against concurrent consumption.
func (repo *accessRepository) UpdatePlan(ctx context.Context, userID uuid.UUID, plan entity.Plan, expiresAt *time.Time, subscriptionID *string) (*entity.UserAccess, error) {
	now := time.Now()
	accessM := model.UserAccessModel{
		UserID:         userID,
		Plan:           string(plan),
		SearchesUsed:   0,
		MonthStart:     now,
		ExpiresAt:      expiresAt,
		SubscriptionID: subscriptionID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"plan":            string(plan),
				"searches_used":   0,
				"month_start":     now,
				"expires_at":      expiresAt,
				"subscription_id": subscriptionID,
				"updated_at":      now,
			}),
		}).
		Create(&accessM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user plan")
	}

	return toAccessDomain(&accessM), nil
}

// RecordConsumption charges one search in a single atomic UPDATE. The CASE
// expressions implement the month rollover (first search of a new UTC month
// lands at 1, month_start advances). The WHERE guard closes the
// read-then-write race for BASIC users: two concurrent requests cannot both
// land past the ceiling, the loser sees zero rows updated.
func (repo *accessRepository) RecordConsumption(ctx context.Context, userID uuid.UUID, now time.Time, basicQuota int) error {
	query := `
		UPDATE user_access
		SET searches_used = CASE
		      WHEN date_trunc('month', month_start AT TIME ZONE 'UTC') <> date_trunc('month', ?::timestamptz AT TIME ZONE 'UTC') THEN 1
		      ELSE searches_used + 1
		    END,
		    month_start = CASE
		      WHEN date_trunc('month', month_start AT TIME ZONE 'UTC') <> date_trunc('month', ?::timestamptz AT TIME ZONE 'UTC') THEN ?::timestamptz
		      ELSE month_start
		    END,
		    updated_at = ?
		WHERE user_id = ?
		  AND (plan <> 'BASIC'
		       OR searches_used < ?
		       OR date_trunc('month', month_start AT TIME ZONE 'UTC') <> date_trunc('month', ?::timestamptz AT TIME ZONE 'UTC'))
	`

	result := repo.db.WithContext(ctx).Exec(query, now, now, now, now, userID, basicQuota, now)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record search consumption")
	}

	if result.RowsAffected == 0 {
		// Zero rows means either no access row or a guarded quota miss;
		// one cheap read tells them apart.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.UserAccessModel{}).
			Where("user_id = ?", userID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check user access existence")
		}
		if count == 0 {
			return repository.ErrAccessNotFound
		}

		return repository.ErrQuotaExceeded
	}

	return nil
}

// --- Mapper Functions ---

// toAccessDomain converts a GORM UserAccessModel to a domain UserAccess entity.
func toAccessDomain(data *model.UserAccessModel) *entity.UserAccess {
	if data == nil {
		return nil
	}

	return &entity.UserAccess{
		UserID:         data.UserID,
		Plan:           entity.Plan(data.Plan),
		SearchesUsed:   data.SearchesUsed,
		MonthStart:     data.MonthStart,
		ExpiresAt:      data.ExpiresAt,
		SubscriptionID: data.SubscriptionID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
