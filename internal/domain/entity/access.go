package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plan is a subscription tier. Stored as its string value.
type Plan string

const (
	PlanFree    Plan = "FREE"
	PlanBasic   Plan = "BASIC"
	PlanPremium Plan = "PREMIUM"
	PlanAnnual  Plan = "ANNUAL"
)

// Paid reports whether the plan is a paid tier.
func (p Plan) Paid() bool {
	return p == PlanBasic || p == PlanPremium || p == PlanAnnual
}

// Unlimited reports whether the plan has no monthly search quota.
func (p Plan) Unlimited() bool {
	return p == PlanPremium || p == PlanAnnual
}

// ParsePlan maps a plan string through the closed set of known tiers.
// Unknown values are rejected rather than trusted.
func ParsePlan(s string) (Plan, bool) {
	switch Plan(s) {
	case PlanFree, PlanBasic, PlanPremium, PlanAnnual:
		return Plan(s), true
	}

	return "", false
}

// UserAccess is the per-user entitlement row: subscription tier, quota
// consumption for the current calendar month, and lazy expiry state.
// Exactly one row exists per user, created lazily on first access.
type UserAccess struct {
	UserID         uuid.UUID  // The user this row belongs to.
	Plan           Plan       // Stored tier. May still read as a paid tier after expiry (lazy expiry).
	SearchesUsed   int        // Searches consumed in the current quota window.
	MonthStart     time.Time  // Start of the current quota window.
	ExpiresAt      *time.Time // Plan lapse time. Nil for FREE and for plans without a fixed term.
	SubscriptionID *string    // External payment-subscription reference, when one exists.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Expired reports whether a paid plan has lapsed. This is a computed
// predicate evaluated at gate time; the stored Plan field is not rewritten.
func (a *UserAccess) Expired(now time.Time) bool {
	return a.Plan.Paid() && a.ExpiresAt != nil && now.After(*a.ExpiresAt)
}

// QuotaWindowRolled reports whether the UTC calendar month has changed since
// MonthStart. The physical reset happens on the next consumption write, not
// here.
func (a *UserAccess) QuotaWindowRolled(now time.Time) bool {
	start := a.MonthStart.UTC()
	cur := now.UTC()

	return start.Year() != cur.Year() || start.Month() != cur.Month()
}

// EffectiveSearchesUsed returns the quota consumption for the current window,
// treating a rolled-over window as zero without mutating the row.
func (a *UserAccess) EffectiveSearchesUsed(now time.Time) int {
	if a.QuotaWindowRolled(now) {
		return 0
	}

	return a.SearchesUsed
}
