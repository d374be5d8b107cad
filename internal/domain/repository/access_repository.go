package repository

import (
	"context"
	"time"

	"rxradar/internal/domain/entity"
	"rxradar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user-access persistence.
var (
	// ErrAccessNotFound is returned when no access row exists for a user.
	ErrAccessNotFound = errors.New("user access not found")
	// ErrQuotaExceeded is returned when the conditional consumption update
	// finds the quota ceiling already reached. Only reachable when
	// concurrent requests race past the eligibility check.
	ErrQuotaExceeded = errors.New("search quota exceeded")
)

// AccessRepository manages the per-user entitlement row. All mutation goes
// through single atomic upserts/updates keyed by user ID to avoid lost
// updates between concurrent plan changes and consumption events.
type AccessRepository interface {
	// GetOrCreate retrieves the access row for a user, creating it with
	// plan=FREE and zero consumption when none exists yet.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserAccess, error)

	// UpdatePlan upserts the access row with a new plan. Always resets
	// SearchesUsed to 0 and MonthStart to now: a plan change starts a fresh
	// billing cycle. ExpiresAt and SubscriptionID are overwritten as given
	// (nil clears them).
	UpdatePlan(ctx context.Context, userID uuid.UUID, plan entity.Plan, expiresAt *time.Time, subscriptionID *string) (*entity.UserAccess, error)

	// RecordConsumption increments SearchesUsed by one as a single atomic
	// UPDATE. When the UTC calendar month has rolled over since MonthStart,
	// the counter restarts so the first search of a new month lands at 1 and
	// MonthStart advances to now. For the BASIC tier the update is guarded
	// by basicQuota, closing the read-then-write race between concurrent
	// requests: ErrQuotaExceeded is returned instead of landing past the
	// ceiling. Returns ErrAccessNotFound when the row is missing.
	RecordConsumption(ctx context.Context, userID uuid.UUID, now time.Time, basicQuota int) error
}
