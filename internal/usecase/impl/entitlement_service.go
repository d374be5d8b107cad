package impl

import (
	"context"
	"time"

	"rxradar/config"
	"rxradar/internal/domain/entity"
	domainerrors "rxradar/internal/domain/errors"
	"rxradar/internal/domain/repository"
	"rxradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// planCodeTable is the closed lookup mapping external billing plan codes to
// internal tiers and durations. Plan identifiers arriving on webhook payloads
// are never trusted without passing through this table.
var planCodeTable = map[string]struct {
	plan         entity.Plan
	durationDays int
}{
	"basic-monthly":   {plan: entity.PlanBasic, durationDays: 30},
	"premium-monthly": {plan: entity.PlanPremium, durationDays: 30},
	"premium-annual":  {plan: entity.PlanAnnual, durationDays: 365},
}

type entitlementService struct {
	accessRepo repository.AccessRepository
	config     *config.Config
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	AccessRepo repository.AccessRepository
	Config     *config.Config
}

// NewEntitlementService creates a new entitlement service instance
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		accessRepo: params.AccessRepo,
		config:     params.Config,
	}
}

// CheckEligibility decides whether the user may run a search right now.
// Reads only: quota rollover is evaluated as a predicate against the stored
// MonthStart, never written back here.
func (s *entitlementService) CheckEligibility(ctx context.Context, userID uuid.UUID) (*usecase.EligibilityDecision, error) {
	access, err := s.accessRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get or create user access")
	}

	now := time.Now()

	if access.Plan == entity.PlanFree {
		return &usecase.EligibilityDecision{
			Allowed: false,
			Reason:  usecase.ReasonUpgradeRequired,
			Plan:    access.Plan,
		}, nil
	}

	if access.Expired(now) {
		return &usecase.EligibilityDecision{
			Allowed: false,
			Reason:  usecase.ReasonExpired,
			Plan:    access.Plan,
		}, nil
	}

	if access.Plan == entity.PlanBasic &&
		access.EffectiveSearchesUsed(now) >= s.config.Entitlement.BasicMonthlyQuota {
		return &usecase.EligibilityDecision{
			Allowed: false,
			Reason:  usecase.ReasonLimitReached,
			Plan:    access.Plan,
		}, nil
	}

	return &usecase.EligibilityDecision{
		Allowed: true,
		Plan:    access.Plan,
	}, nil
}

// RecordConsumption charges one search against the user's quota window.
func (s *entitlementService) RecordConsumption(ctx context.Context, userID uuid.UUID) error {
	if err := s.accessRepo.RecordConsumption(ctx, userID, time.Now(), s.config.Entitlement.BasicMonthlyQuota); err != nil {
		return errors.Wrap(err, "failed to record search consumption")
	}

	return nil
}

// GetAccessStatus returns the user's current plan and quota view.
func (s *entitlementService) GetAccessStatus(ctx context.Context, userID uuid.UUID) (*usecase.AccessStatus, error) {
	access, err := s.accessRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get or create user access")
	}

	now := time.Now()
	used := access.EffectiveSearchesUsed(now)

	status := &usecase.AccessStatus{
		Plan:         access.Plan,
		SearchesUsed: used,
		MonthStart:   access.MonthStart,
		ExpiresAt:    access.ExpiresAt,
	}

	if access.Plan == entity.PlanBasic {
		remaining := s.config.Entitlement.BasicMonthlyQuota - used
		if remaining < 0 {
			remaining = 0
		}
		status.SearchesRemaining = &remaining
	}

	return status, nil
}

// UpdateUserPlan upserts the user's plan. This is the only mutation path
// triggered by billing events or administrative actions.
func (s *entitlementService) UpdateUserPlan(ctx context.Context, userID uuid.UUID, plan entity.Plan, durationDays *int, subscriptionID *string) (*entity.UserAccess, error) {
	var expiresAt *time.Time
	if plan != entity.PlanFree && durationDays != nil {
		t := time.Now().AddDate(0, 0, *durationDays)
		expiresAt = &t
	}
	if plan == entity.PlanFree {
		// Cancellation resets everything: no expiry, no subscription reference.
		expiresAt = nil
		subscriptionID = nil
	}

	access, err := s.accessRepo.UpdatePlan(ctx, userID, plan, expiresAt, subscriptionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user plan")
	}

	return access, nil
}

// ApplyBillingEvent maps a payment-provider lifecycle event onto a plan
// change. Unknown event kinds are acknowledged and ignored so the provider
// does not retry them forever.
func (s *entitlementService) ApplyBillingEvent(ctx context.Context, event *usecase.BillingEvent) error {
	switch event.Kind {
	case usecase.BillingEventActivated:
		mapping, ok := planCodeTable[event.PlanCode]
		if !ok {
			return domainerrors.ErrUnknownPlanCode.WithDetails(event.PlanCode)
		}

		duration := mapping.durationDays
		subscriptionID := event.SubscriptionID
		if _, err := s.UpdateUserPlan(ctx, event.UserID, mapping.plan, &duration, &subscriptionID); err != nil {
			return err
		}

		return nil

	case usecase.BillingEventCancelled, usecase.BillingEventSuspended:
		if _, err := s.UpdateUserPlan(ctx, event.UserID, entity.PlanFree, nil, nil); err != nil {
			return err
		}

		return nil

	default:
		// Unhandled event kinds are deliberately ignored.
		return nil
	}
}
