package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"rxradar/config"
	"rxradar/internal/domain/entity"
	domainerrors "rxradar/internal/domain/errors"
	"rxradar/internal/domain/repository"
	mockRepo "rxradar/internal/mocks/repository"
	mockUC "rxradar/internal/mocks/usecase"
	"rxradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchServiceMocks struct {
	entitlement    *mockUC.MockEntitlementUsecase
	zipRepo        *mockRepo.MockZipRepository
	drugRepo       *mockRepo.MockDrugRepository
	prescriberRepo *mockRepo.MockPrescriberRepository
}

func newSearchService(t *testing.T) (usecase.SearchUsecase, *searchServiceMocks) {
	t.Helper()

	mocks := &searchServiceMocks{
		entitlement:    mockUC.NewMockEntitlementUsecase(t),
		zipRepo:        mockRepo.NewMockZipRepository(t),
		drugRepo:       mockRepo.NewMockDrugRepository(t),
		prescriberRepo: mockRepo.NewMockPrescriberRepository(t),
	}

	cfg := &config.Config{
		Search: &config.SearchConfig{
			DefaultRadiusMiles: 25,
			MaxRadiusMiles:     100,
			MaxResults:         50,
			QueryTimeout:       5 * time.Second,
			SuggestMinChars:    2,
			SuggestMaxResults:  10,
		},
		Entitlement: &config.EntitlementConfig{BasicMonthlyQuota: 5},
	}

	service := NewSearchService(SearchServiceParams{
		Entitlement:    mocks.entitlement,
		ZipRepo:        mocks.zipRepo,
		DrugRepo:       mocks.drugRepo,
		PrescriberRepo: mocks.prescriberRepo,
		Config:         cfg,
	})

	return service, mocks
}

func allowedDecision(plan entity.Plan) *usecase.EligibilityDecision {
	return &usecase.EligibilityDecision{Allowed: true, Plan: plan}
}

// candidateAt builds a result row for a prescriber located at (lat, lng).
func candidateAt(npi, name string, lat, lng float64, drugID int64, claims int) *entity.SearchCandidate {
	specialty := "Family Medicine"

	return &entity.SearchCandidate{
		Prescriber: entity.Prescriber{
			NPI:       npi,
			Name:      name,
			Specialty: &specialty,
			Address: entity.PracticeAddress{
				Street: "123 Main St",
				City:   "Springfield",
				State:  "PA",
				Zip:    "19064",
			},
			Location: orb.Point{lng, lat},
		},
		DrugID:      drugID,
		TotalClaims: claims,
	}
}

func TestSearchService_Search_MissingDrugName(t *testing.T) {
	service, _ := newSearchService(t)

	_, err := service.Search(context.Background(), uuid.New(), &usecase.SearchInput{
		Drugs:   []string{"  "},
		Anchors: []usecase.SearchAnchor{{Zip: "19064"}},
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MISSING_DRUG_NAME", appErr.ErrorCode())
}

func TestSearchService_Search_InvalidZipFormat(t *testing.T) {
	service, _ := newSearchService(t)

	for _, zip := range []string{"1234", "123456", "19O64"} {
		_, err := service.Search(context.Background(), uuid.New(), &usecase.SearchInput{
			Drugs:   []string{"Lipitor"},
			Anchors: []usecase.SearchAnchor{{Zip: zip}},
		})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr, "zip %q", zip)
		assert.Equal(t, "INVALID_ZIP", appErr.ErrorCode())
	}
}

func TestSearchService_Search_RadiusOutOfRange(t *testing.T) {
	service, _ := newSearchService(t)

	_, err := service.Search(context.Background(), uuid.New(), &usecase.SearchInput{
		Drugs:       []string{"Lipitor"},
		Anchors:     []usecase.SearchAnchor{{Zip: "19064"}},
		RadiusMiles: 500,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_RADIUS", appErr.ErrorCode())
}

func TestSearchService_Search_MissingAnchor(t *testing.T) {
	service, _ := newSearchService(t)

	lat := 39.9
	for name, anchors := range map[string][]usecase.SearchAnchor{
		"no anchors":      {},
		"lat without lng": {{Lat: &lat}},
	} {
		_, err := service.Search(context.Background(), uuid.New(), &usecase.SearchInput{
			Drugs:   []string{"Lipitor"},
			Anchors: anchors,
		})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr, name)
		assert.Equal(t, "MISSING_ANCHOR", appErr.ErrorCode(), name)
	}
}

func TestSearchService_Search_DefaultRadiusLeavesInputUntouched(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SearchInput{
		Drugs:   []string{"Lipitor"},
		Anchors: []usecase.SearchAnchor{{Zip: "19064"}},
	}

	mocks.entitlement.EXPECT().CheckEligibility(ctx, userID).Return(allowedDecision(entity.PlanBasic), nil)
	mocks.zipRepo.EXPECT().FindByZip(ctx, "19064").Return(nil, repository.ErrZipNotFound)

	out, err := service.Search(ctx, userID, input)

	require.NoError(t, err)
	assert.Empty(t, out.Results)
	assert.Zero(t, input.RadiusMiles)
}

func TestSearchService_Search_DeniedBeforeAnyResolution(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.entitlement.EXPECT().
		CheckEligibility(ctx, userID).
		Return(&usecase.EligibilityDecision{
			Allowed: false,
			Reason:  usecase.ReasonUpgradeRequired,
			Plan:    entity.PlanFree,
		}, nil)

	_, err := service.Search(ctx, userID, &usecase.SearchInput{
		Drugs:       []string{"Lipitor"},
		Anchors:     []usecase.SearchAnchor{{Zip: "19064"}},
		RadiusMiles: 10,
	})

	var denial *domainerrors.EntitlementDenialError
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, "upgrade_required", denial.Reason())
	assert.Equal(t, "UPGRADE_REQUIRED", denial.ErrorCode())
}

func TestSearchService_Search_CompoundRequiresUnlimitedTier(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.entitlement.EXPECT().
		CheckEligibility(ctx, userID).
		Return(allowedDecision(entity.PlanBasic), nil)

	_, err := service.Search(ctx, userID, &usecase.SearchInput{
		Drugs:       []string{"Lipitor", "Crestor"},
		Anchors:     []usecase.SearchAnchor{{Zip: "19064"}},
		RadiusMiles: 10,
	})

	var denial *domainerrors.EntitlementDenialError
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, "premium_only", denial.Reason())
}

func TestSearchService_Search_UnknownZipYieldsEmptyWithoutConsumption(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.entitlement.EXPECT().
		CheckEligibility(ctx, userID).
		Return(allowedDecision(entity.PlanBasic), nil)

	mocks.zipRepo.EXPECT().
		FindByZip(ctx, "00000").
		Return(nil, repository.ErrZipNotFound)

	mocks.drugRepo.EXPECT().
		FindByBrandName(ctx, "Lipitor").
		Return(&entity.Drug{ID: 1, BrandName: "Lipitor"}, nil)

	output, err := service.Search(ctx, userID, &usecase.SearchInput{
		Drugs:       []string{"Lipitor"},
		Anchors:     []usecase.SearchAnchor{{Zip: "00000"}},
		RadiusMiles: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, output.Results)
	assert.Equal(t, 0, output.TotalCount)
	assert.NotEqual(t, uuid.Nil, output.SearchID)
}

func TestSearchService_Search_UnknownDrugYieldsEmptyWithoutConsumption(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.entitlement.EXPECT().
		CheckEligibility(ctx, userID).
		Return(allowedDecision(entity.PlanPremium), nil)

	mocks.zipRepo.EXPECT().
		FindByZip(ctx, "19064").
		Return(&entity.GeoAnchor{Zip: "19064", Point: orb.Point{0, 0}}, nil)

	mocks.drugRepo.EXPECT().
		FindByBrandName(ctx, "Notarealdrug").
		Return(nil, repository.ErrDrugNotFound)

	output, err := service.Search(ctx, userID, &usecase.SearchInput{
		Drugs:       []string{"Notarealdrug"},
		Anchors:     []usecase.SearchAnchor{{Zip: "19064"}},
		RadiusMiles: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, output.Results)
}

func TestSearchService_Search_FiltersBoundingBoxCorners(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()
	anchor := orb.Point{0, 0}

	mocks.entitlement.EXPECT().
		CheckEligibility(ctx, userID).
		Return(allowedDecision(entity.PlanBasic), nil)

	mocks.zipRepo.EXPECT().
		FindByZip(ctx, "19064").
		Return(&entity.GeoAnchor{Zip: "19064", Point: anchor}, nil)

	mocks.drugRepo.EXPECT().
		FindByBrandName(ctx, "Lipitor").
		Return(&entity.Drug{ID: 7, BrandName: "Lipitor"}, nil)

	// 0.1 deg of latitude is roughly 6.9 miles: inside a 10-mile radius. The
	// corner candidate sits inside the bounding box but about 13.7 miles out.
	inRange := candidateAt("1111111111", "Dr. Near", 0.1, 0, 7, 80)
	corner := candidateAt("2222222222", "Dr. Corner", 0.14, 0.14, 7, 120)

	mocks.prescriberRepo.EXPECT().
		FindCandidatesInBound(mock.Anything, int64(7), mock.AnythingOfType("orb.Bound")).
		Return([]*entity.SearchCandidate{inRange, corner}, nil)

	mocks.entitlement.EXPECT().
		RecordConsumption(ctx, userID).
		Return(nil)

	output, err := service.Search(ctx, userID, &usecase.SearchInput{
		Drugs:       []string{"Lipitor"},
		Anchors:     []usecase.SearchAnchor{{Zip: "19064"}},
		RadiusMiles: 10,
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)

	result := output.Results[0]
	assert.Equal(t, "1111111111", result.NPI)
	assert.Equal(t, "Dr. Near", result.Name)
	assert.InDelta(t, 6.9, result.DistanceMiles, 0.1)
	assert.Greater(t, result.MatchScore, 0)
	assert.LessOrEqual(t, result.MatchScore, 100)
	assert.True(t, output.IsPremium)
}

func TestSearchService_Search_OrdersByDistanceWithNPITieBreak(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()
	anchor := orb.Point{0, 0}

	mocks.entitlement.EXPECT().
		CheckEligibility(ctx, userID).
		Return(allowedDecision(entity.PlanPremium), nil)

	mocks.zipRepo.EXPECT().
		FindByZip(ctx, "19064").
		Return(&entity.GeoAnchor{Zip: "19064", Point: anchor}, nil)

	mocks.drugRepo.EXPECT().
		FindByBrandName(ctx, "Lipitor").
		Return(&entity.Drug{ID: 7, BrandName: "Lipitor"}, nil)

	far := candidateAt("1111111111", "Dr. Far", 0.1, 0, 7, 10)
	nearA := candidateAt("3333333333", "Dr. Near B", 0.05, 0, 7, 10)
	nearB := candidateAt("2222222222", "Dr. Near A", 0.05, 0, 7, 10)

	mocks.prescriberRepo.EXPECT().
		FindCandidatesInBound(mock.Anything, int64(7), mock.AnythingOfType("orb.Bound")).
		Return([]*entity.SearchCandidate{far, nearA, nearB}, nil)

	mocks.entitlement.EXPECT().
		RecordConsumption(ctx, userID).
		Return(nil)

	output, err := service.Search(ctx, userID, &usecase.SearchInput{
		Drugs:       []string{"Lipitor"},
		Anchors:     []usecase.SearchAnchor{{Zip: "19064"}},
		RadiusMiles: 10,
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 3)
	assert.Equal(t, "2222222222", output.Results[0].NPI)
	assert.Equal(t, "3333333333", output.Results[1].NPI)
	assert.Equal(t, "1111111111", output.Results[2].NPI)
}

func TestSearchService_Search_CompoundDeduplicatesByClosestAnchor(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()
	nearAnchor := orb.Point{0, 0}
	farAnchor := orb.Point{0, 0.1}

	mocks.entitlement.EXPECT().
		CheckEligibility(ctx, userID).
		Return(allowedDecision(entity.PlanPremium), nil)

	mocks.zipRepo.EXPECT().
		FindByZip(ctx, "19064").
		Return(&entity.GeoAnchor{Zip: "19064", Point: nearAnchor}, nil)
	mocks.zipRepo.EXPECT().
		FindByZip(ctx, "19063").
		Return(&entity.GeoAnchor{Zip: "19063", Point: farAnchor}, nil)

	mocks.drugRepo.EXPECT().
		FindByBrandName(ctx, "Lipitor").
		Return(&entity.Drug{ID: 7, BrandName: "Lipitor"}, nil)

	// The same prescriber comes back from both anchors' radius queries.
	mocks.prescriberRepo.EXPECT().
		FindCandidatesInBound(mock.Anything, int64(7), mock.AnythingOfType("orb.Bound")).
		RunAndReturn(func(_ context.Context, drugID int64, _ orb.Bound) ([]*entity.SearchCandidate, error) {
			return []*entity.SearchCandidate{
				candidateAt("1111111111", "Dr. Shared", 0.02, 0, drugID, 40),
			}, nil
		}).
		Times(2)

	mocks.entitlement.EXPECT().
		RecordConsumption(ctx, userID).
		Return(nil)

	output, err := service.Search(ctx, userID, &usecase.SearchInput{
		Drugs:       []string{"Lipitor"},
		Anchors:     []usecase.SearchAnchor{{Zip: "19064"}, {Zip: "19063"}},
		RadiusMiles: 10,
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)

	// 0.02 deg from the near anchor is about 1.38 miles; the far anchor's
	// view of the same prescriber is several miles out and must lose.
	assert.InDelta(t, 1.38, output.Results[0].DistanceMiles, 0.05)
}

func TestSearchService_Search_QuotaRaceSurfacesAsLimitReached(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.entitlement.EXPECT().
		CheckEligibility(ctx, userID).
		Return(allowedDecision(entity.PlanBasic), nil)

	mocks.zipRepo.EXPECT().
		FindByZip(ctx, "19064").
		Return(&entity.GeoAnchor{Zip: "19064", Point: orb.Point{0, 0}}, nil)

	mocks.drugRepo.EXPECT().
		FindByBrandName(ctx, "Lipitor").
		Return(&entity.Drug{ID: 7, BrandName: "Lipitor"}, nil)

	mocks.prescriberRepo.EXPECT().
		FindCandidatesInBound(mock.Anything, int64(7), mock.AnythingOfType("orb.Bound")).
		Return([]*entity.SearchCandidate{candidateAt("1111111111", "Dr. Near", 0.05, 0, 7, 40)}, nil)

	mocks.entitlement.EXPECT().
		RecordConsumption(ctx, userID).
		Return(repository.ErrQuotaExceeded)

	_, err := service.Search(ctx, userID, &usecase.SearchInput{
		Drugs:       []string{"Lipitor"},
		Anchors:     []usecase.SearchAnchor{{Zip: "19064"}},
		RadiusMiles: 10,
	})

	var denial *domainerrors.EntitlementDenialError
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, "limit_reached", denial.Reason())
}

func TestSearchService_Search_RepoErrorDoesNotConsume(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.entitlement.EXPECT().
		CheckEligibility(ctx, userID).
		Return(allowedDecision(entity.PlanBasic), nil)

	mocks.zipRepo.EXPECT().
		FindByZip(ctx, "19064").
		Return(&entity.GeoAnchor{Zip: "19064", Point: orb.Point{0, 0}}, nil)

	mocks.drugRepo.EXPECT().
		FindByBrandName(ctx, "Lipitor").
		Return(&entity.Drug{ID: 7, BrandName: "Lipitor"}, nil)

	mocks.prescriberRepo.EXPECT().
		FindCandidatesInBound(mock.Anything, int64(7), mock.AnythingOfType("orb.Bound")).
		Return(nil, errors.New("db down"))

	_, err := service.Search(ctx, userID, &usecase.SearchInput{
		Drugs:       []string{"Lipitor"},
		Anchors:     []usecase.SearchAnchor{{Zip: "19064"}},
		RadiusMiles: 10,
	})
	assert.Error(t, err)
}

func TestSearchService_Search_RawCoordinateAnchor(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()
	lat, lng := 0.0, 0.0

	mocks.entitlement.EXPECT().
		CheckEligibility(ctx, userID).
		Return(allowedDecision(entity.PlanBasic), nil)

	mocks.drugRepo.EXPECT().
		FindByBrandName(ctx, "Lipitor").
		Return(&entity.Drug{ID: 7, BrandName: "Lipitor"}, nil)

	mocks.prescriberRepo.EXPECT().
		FindCandidatesInBound(mock.Anything, int64(7), mock.AnythingOfType("orb.Bound")).
		Return([]*entity.SearchCandidate{candidateAt("1111111111", "Dr. Near", 0.05, 0, 7, 40)}, nil)

	mocks.entitlement.EXPECT().
		RecordConsumption(ctx, userID).
		Return(nil)

	output, err := service.Search(ctx, userID, &usecase.SearchInput{
		Drugs:       []string{"Lipitor"},
		Anchors:     []usecase.SearchAnchor{{Lat: &lat, Lng: &lng}},
		RadiusMiles: 10,
	})
	require.NoError(t, err)
	assert.Len(t, output.Results, 1)
}

func TestSearchService_Search_RejectsOutOfRangeCoordinates(t *testing.T) {
	service, mocks := newSearchService(t)

	ctx := context.Background()
	userID := uuid.New()
	lat, lng := 91.0, 0.0

	mocks.entitlement.EXPECT().
		CheckEligibility(ctx, userID).
		Return(allowedDecision(entity.PlanBasic), nil)

	_, err := service.Search(ctx, userID, &usecase.SearchInput{
		Drugs:       []string{"Lipitor"},
		Anchors:     []usecase.SearchAnchor{{Lat: &lat, Lng: &lng}},
		RadiusMiles: 10,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_GEO_INPUT", appErr.ErrorCode())
}
