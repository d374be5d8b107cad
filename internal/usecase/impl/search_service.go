package impl

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"rxradar/config"
	"rxradar/internal/domain/entity"
	domainerrors "rxradar/internal/domain/errors"
	"rxradar/internal/domain/geo"
	"rxradar/internal/domain/repository"
	"rxradar/internal/domain/scoring"
	"rxradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// obscuredPlaceholder replaces name and street detail for non-premium
// responses. The presentation layer renders it as a locked field.
const obscuredPlaceholder = "Hidden - upgrade to view"

var zipPattern = regexp.MustCompile(`^\d{5}$`)

type searchService struct {
	entitlement    usecase.EntitlementUsecase
	zipRepo        repository.ZipRepository
	drugRepo       repository.DrugRepository
	prescriberRepo repository.PrescriberRepository
	config         *config.Config
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Entitlement    usecase.EntitlementUsecase
	ZipRepo        repository.ZipRepository
	DrugRepo       repository.DrugRepository
	PrescriberRepo repository.PrescriberRepository
	Config         *config.Config
}

// NewSearchService creates a new search service instance
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		entitlement:    params.Entitlement,
		zipRepo:        params.ZipRepo,
		drugRepo:       params.DrugRepo,
		prescriberRepo: params.PrescriberRepo,
		config:         params.Config,
	}
}

// Search executes one gated prescriber search. The strict per-request order
// is: eligibility check, anchor/drug resolution, radius query, scoring,
// ordering, consumption recording. Consumption is charged only after the
// whole search completed; validation failures, unknown inputs, and storage
// errors never consume quota.
func (s *searchService) Search(ctx context.Context, userID uuid.UUID, input *usecase.SearchInput) (*usecase.SearchOutput, error) {
	radiusMiles, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	decision, err := s.entitlement.CheckEligibility(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check search eligibility")
	}
	if !decision.Allowed {
		return nil, denialError(decision.Reason)
	}

	// Compound searches fan out over multiple drugs or anchors; only
	// unlimited tiers may run them. Rejected outright, never silently
	// truncated.
	if input.Compound() && !decision.Plan.Unlimited() {
		return nil, denialError(usecase.ReasonPremiumOnly)
	}

	isPremium := decision.Plan != entity.PlanFree

	anchors, err := s.resolveAnchors(ctx, input.Anchors)
	if err != nil {
		return nil, err
	}

	drugs, err := s.resolveDrugs(ctx, input.Drugs)
	if err != nil {
		return nil, err
	}

	// Unknown postal codes and catalog gaps are "no data for this input",
	// not system failures: an empty result set, with no quota charged.
	if len(anchors) == 0 || len(drugs) == 0 {
		return &usecase.SearchOutput{
			Results:    []*usecase.SearchResultItem{},
			TotalCount: 0,
			SearchID:   uuid.New(),
			IsPremium:  isPremium,
		}, nil
	}

	candidates, err := s.collectCandidates(ctx, drugs, anchors, radiusMiles, isPremium)
	if err != nil {
		return nil, err
	}

	sortCandidates(candidates)
	if len(candidates) > s.config.Search.MaxResults {
		candidates = candidates[:s.config.Search.MaxResults]
	}

	if err := s.entitlement.RecordConsumption(ctx, userID); err != nil {
		// A concurrent request can win the last quota slot between the
		// eligibility check and here; surface it as the same denial.
		if errors.Is(err, repository.ErrQuotaExceeded) {
			return nil, denialError(usecase.ReasonLimitReached)
		}

		return nil, errors.Wrap(err, "failed to record search consumption")
	}

	results := make([]*usecase.SearchResultItem, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, s.shapeResult(c, isPremium))
	}

	return &usecase.SearchOutput{
		Results:    results,
		TotalCount: len(results),
		SearchID:   uuid.New(),
		IsPremium:  isPremium,
	}, nil
}

// validateInput checks the request shape and resolves the effective radius,
// falling back to the configured default. The caller's input is never
// mutated.
func (s *searchService) validateInput(input *usecase.SearchInput) (float64, error) {
	hasDrug := false
	for _, name := range input.Drugs {
		if strings.TrimSpace(name) != "" {
			hasDrug = true

			break
		}
	}
	if !hasDrug {
		return 0, domainerrors.ErrMissingDrugName
	}

	if len(input.Anchors) == 0 {
		return 0, domainerrors.ErrMissingAnchor
	}
	for _, anchor := range input.Anchors {
		if anchor.Zip != "" {
			if !zipPattern.MatchString(anchor.Zip) {
				return 0, domainerrors.ErrInvalidZip
			}

			continue
		}
		if anchor.Lat == nil || anchor.Lng == nil {
			return 0, domainerrors.ErrMissingAnchor
		}
	}

	radiusMiles := input.RadiusMiles
	if radiusMiles == 0 {
		radiusMiles = s.config.Search.DefaultRadiusMiles
	}
	if radiusMiles < 1 || radiusMiles > s.config.Search.MaxRadiusMiles {
		return 0, domainerrors.ErrInvalidRadius
	}

	return radiusMiles, nil
}

// resolveAnchors turns the request anchors into geographic points. Unknown
// postal codes are skipped; malformed raw coordinates fail fast.
func (s *searchService) resolveAnchors(ctx context.Context, anchors []usecase.SearchAnchor) ([]*entity.GeoAnchor, error) {
	resolved := make([]*entity.GeoAnchor, 0, len(anchors))

	for _, anchor := range anchors {
		if anchor.Zip != "" {
			geoAnchor, err := s.zipRepo.FindByZip(ctx, anchor.Zip)
			if err != nil {
				if errors.Is(err, repository.ErrZipNotFound) {
					continue
				}

				return nil, errors.Wrap(err, "failed to resolve zip anchor")
			}
			resolved = append(resolved, geoAnchor)

			continue
		}

		point := orb.Point{*anchor.Lng, *anchor.Lat}
		if err := geo.ValidatePoint(point); err != nil {
			return nil, domainerrors.ErrInvalidGeoInput.WithDetails(err.Error())
		}
		resolved = append(resolved, &entity.GeoAnchor{Point: point})
	}

	return resolved, nil
}

// resolveDrugs maps brand names through the catalog. Unknown names are
// skipped so catalog gaps surface as zero results, not hard failures.
func (s *searchService) resolveDrugs(ctx context.Context, names []string) ([]*entity.Drug, error) {
	resolved := make([]*entity.Drug, 0, len(names))
	seen := make(map[int64]bool, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		drug, err := s.drugRepo.FindByBrandName(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrDrugNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to resolve drug")
		}
		if seen[drug.ID] {
			continue
		}
		seen[drug.ID] = true
		resolved = append(resolved, drug)
	}

	return resolved, nil
}

// collectCandidates runs the bounded radius query for every (drug, anchor)
// pair, applies the exact great-circle post-filter, scores each survivor, and
// de-duplicates by (npi, drug) keeping the closest anchor's row.
func (s *searchService) collectCandidates(ctx context.Context, drugs []*entity.Drug, anchors []*entity.GeoAnchor, radiusMiles float64, isPremium bool) ([]*scoredCandidate, error) {
	type dedupeKey struct {
		npi    string
		drugID int64
	}
	best := make(map[dedupeKey]*scoredCandidate)

	for _, drug := range drugs {
		// Controlled substances are withheld entirely from FREE-equivalent
		// responses.
		if drug.ControlledSubstance && !isPremium {
			continue
		}

		for _, anchor := range anchors {
			bound := geo.BoundAround(anchor.Point, radiusMiles)

			queryCtx, cancel := context.WithTimeout(ctx, s.config.Search.QueryTimeout)
			rows, err := s.prescriberRepo.FindCandidatesInBound(queryCtx, drug.ID, bound)
			cancel()
			if err != nil {
				return nil, errors.Wrap(err, "failed to query prescriber candidates")
			}

			for _, row := range rows {
				// The bounding box is a superset of the circle; corners are
				// excluded here with the exact distance.
				distance := geo.DistanceMiles(anchor.Point, row.Prescriber.Location)
				if distance > radiusMiles {
					continue
				}

				row.DistanceMiles = distance
				row.MatchScore = scoring.Score(row, radiusMiles)

				key := dedupeKey{npi: row.Prescriber.NPI, drugID: drug.ID}
				if existing, ok := best[key]; ok && existing.candidate.DistanceMiles <= distance {
					continue
				}
				best[key] = &scoredCandidate{candidate: row, drug: drug}
			}
		}
	}

	collected := make([]*scoredCandidate, 0, len(best))
	for _, c := range best {
		collected = append(collected, c)
	}

	return collected, nil
}

type scoredCandidate struct {
	candidate *entity.SearchCandidate
	drug      *entity.Drug
}

// sortCandidates orders ascending by distance with NPI then drug id as
// deterministic tie-breakers.
func sortCandidates(candidates []*scoredCandidate) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.candidate.DistanceMiles != b.candidate.DistanceMiles {
			return a.candidate.DistanceMiles < b.candidate.DistanceMiles
		}
		if a.candidate.Prescriber.NPI != b.candidate.Prescriber.NPI {
			return a.candidate.Prescriber.NPI < b.candidate.Prescriber.NPI
		}

		return a.drug.ID < b.drug.ID
	})
}

func (s *searchService) shapeResult(c *scoredCandidate, isPremium bool) *usecase.SearchResultItem {
	prescriber := c.candidate.Prescriber

	item := &usecase.SearchResultItem{
		NPI:           prescriber.NPI,
		Name:          prescriber.Name,
		Specialty:     prescriber.Specialty,
		Street:        prescriber.Address.Street,
		City:          prescriber.Address.City,
		State:         prescriber.Address.State,
		Zip:           prescriber.Address.Zip,
		Drug:          c.drug.BrandName,
		TotalClaims:   c.candidate.TotalClaims,
		DistanceMiles: c.candidate.DistanceMiles,
		MatchScore:    c.candidate.MatchScore,
	}

	if !isPremium {
		item.Name = obscuredPlaceholder
		item.Street = obscuredPlaceholder
	}

	return item
}

// denialError maps a gate reason code to its AppError.
func denialError(reason usecase.DenialReason) error {
	switch reason {
	case usecase.ReasonUpgradeRequired:
		return domainerrors.NewEntitlementDenial(string(reason), domainerrors.ErrUpgradeRequired)
	case usecase.ReasonExpired:
		return domainerrors.NewEntitlementDenial(string(reason), domainerrors.ErrPlanExpired)
	case usecase.ReasonLimitReached:
		return domainerrors.NewEntitlementDenial(string(reason), domainerrors.ErrSearchLimitReached)
	case usecase.ReasonPremiumOnly:
		return domainerrors.NewEntitlementDenial(string(reason), domainerrors.ErrPremiumOnly)
	default:
		return domainerrors.ErrInternalError
	}
}
