//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"rxradar/internal/domain/entity"
	"rxradar/internal/domain/repository"
	"rxradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run with:
//
//	TEST_POSTGRES_DSN="host=localhost port=5432 user=postgres password=postgres dbname=rxradar_test sslmode=disable" \
//	  go test -tags integration ./internal/infra/persistence/postgres/...
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserAccessModel{}))

	return db
}

func seedAccess(t *testing.T, db *gorm.DB, plan entity.Plan, searchesUsed int, monthStart time.Time) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	row := model.UserAccessModel{
		UserID:       userID,
		Plan:         string(plan),
		SearchesUsed: searchesUsed,
		MonthStart:   monthStart,
	}
	require.NoError(t, db.Create(&row).Error)
	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&model.UserAccessModel{})
	})

	return userID
}

func readAccess(t *testing.T, db *gorm.DB, userID uuid.UUID) model.UserAccessModel {
	t.Helper()

	var row model.UserAccessModel
	require.NoError(t, db.Where("user_id = ?", userID).First(&row).Error)

	return row
}

func TestAccessRepository_RecordConsumption_IncrementsWithinMonth(t *testing.T) {
	db := openTestDB(t)
	repo := NewAccessRepository(db)

	now := time.Now().UTC()
	userID := seedAccess(t, db, entity.PlanBasic, 2, now)

	require.NoError(t, repo.RecordConsumption(context.Background(), userID, now, 5))

	row := readAccess(t, db, userID)
	assert.Equal(t, 3, row.SearchesUsed)
	assert.Equal(t, now.Month(), row.MonthStart.UTC().Month())
}

func TestAccessRepository_RecordConsumption_MonthRolloverResets(t *testing.T) {
	db := openTestDB(t)
	repo := NewAccessRepository(db)

	now := time.Now().UTC()
	prevMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	// At the ceiling, but the window is stale: the first search of the
	// new month must land at 1 with month_start advanced, not be refused.
	userID := seedAccess(t, db, entity.PlanBasic, 5, prevMonth)

	require.NoError(t, repo.RecordConsumption(context.Background(), userID, now, 5))

	row := readAccess(t, db, userID)
	assert.Equal(t, 1, row.SearchesUsed)
	assert.Equal(t, now.Year(), row.MonthStart.UTC().Year())
	assert.Equal(t, now.Month(), row.MonthStart.UTC().Month())
}

func TestAccessRepository_RecordConsumption_QuotaGuardRefusesAtCeiling(t *testing.T) {
	db := openTestDB(t)
	repo := NewAccessRepository(db)

	now := time.Now().UTC()
	userID := seedAccess(t, db, entity.PlanBasic, 5, now)

	err := repo.RecordConsumption(context.Background(), userID, now, 5)
	require.ErrorIs(t, err, repository.ErrQuotaExceeded)

	row := readAccess(t, db, userID)
	assert.Equal(t, 5, row.SearchesUsed)
}

func TestAccessRepository_RecordConsumption_UnlimitedPlanIgnoresCeiling(t *testing.T) {
	db := openTestDB(t)
	repo := NewAccessRepository(db)

	now := time.Now().UTC()
	userID := seedAccess(t, db, entity.PlanPremium, 100, now)

	require.NoError(t, repo.RecordConsumption(context.Background(), userID, now, 5))

	row := readAccess(t, db, userID)
	assert.Equal(t, 101, row.SearchesUsed)
}

func TestAccessRepository_RecordConsumption_MissingRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewAccessRepository(db)

	err := repo.RecordConsumption(context.Background(), uuid.New(), time.Now().UTC(), 5)
	assert.ErrorIs(t, err, repository.ErrAccessNotFound)
}
