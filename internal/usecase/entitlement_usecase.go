package usecase

import (
	"context"
	"time"

	"rxradar/internal/domain/entity"

	"github.com/google/uuid"
)

// DenialReason is the machine-readable reason an eligibility check failed.
type DenialReason string

const (
	ReasonUpgradeRequired DenialReason = "upgrade_required"
	ReasonExpired         DenialReason = "expired"
	ReasonLimitReached    DenialReason = "limit_reached"
	ReasonPremiumOnly     DenialReason = "premium_only"
)

// EligibilityDecision is the outcome of a gate check. When Allowed is false,
// Reason carries the user-actionable denial code.
type EligibilityDecision struct {
	Allowed bool
	Reason  DenialReason
	Plan    entity.Plan
}

// AccessStatus is the user-facing view of an entitlement row.
type AccessStatus struct {
	Plan              entity.Plan `json:"plan"`
	SearchesUsed      int         `json:"searches_used"`
	SearchesRemaining *int        `json:"searches_remaining,omitempty"` // Nil for unlimited tiers.
	MonthStart        time.Time   `json:"month_start"`
	ExpiresAt         *time.Time  `json:"expires_at,omitempty"`
}

// BillingEventKind tags the known payment-provider event types. Events
// outside this closed set are acknowledged and ignored.
type BillingEventKind string

const (
	BillingEventActivated BillingEventKind = "activated"
	BillingEventCancelled BillingEventKind = "cancelled"
	BillingEventSuspended BillingEventKind = "suspended"
)

// BillingEvent is a parsed subscription lifecycle event from the external
// payment provider. Signature verification and wire-format parsing happen
// outside the core; only these fields are read.
type BillingEvent struct {
	Kind           BillingEventKind `json:"kind"`
	UserID         uuid.UUID        `json:"user_id"`
	PlanCode       string           `json:"plan_code"`
	SubscriptionID string           `json:"subscription_id"`
}

// EntitlementUsecase is the per-user subscription state machine gating and
// metering search access.
type EntitlementUsecase interface {
	// CheckEligibility decides whether the user may run a search right now.
	// The check is read-only apart from the lazy creation of a FREE access
	// row for first-time users; quota rollover is evaluated as a predicate,
	// never written here.
	CheckEligibility(ctx context.Context, userID uuid.UUID) (*EligibilityDecision, error)

	// RecordConsumption charges one search against the user's quota window.
	// Called once per successfully completed search, regardless of plan.
	RecordConsumption(ctx context.Context, userID uuid.UUID) error

	// GetAccessStatus returns the user's current plan and quota view,
	// creating the FREE row lazily when none exists.
	GetAccessStatus(ctx context.Context, userID uuid.UUID) (*AccessStatus, error)

	// UpdateUserPlan upserts the user's plan. A non-nil durationDays sets
	// the expiry for paid plans; FREE always clears expiry and subscription
	// reference. Quota restarts on every plan change.
	UpdateUserPlan(ctx context.Context, userID uuid.UUID, plan entity.Plan, durationDays *int, subscriptionID *string) (*entity.UserAccess, error)

	// ApplyBillingEvent maps a payment-provider event onto a plan change
	// through the closed plan-code lookup table. Unknown event kinds are
	// ignored; unknown plan codes are rejected.
	ApplyBillingEvent(ctx context.Context, event *BillingEvent) error
}
