package impl

import (
	"context"
	"testing"

	"rxradar/config"
	"rxradar/internal/domain/entity"
	mockRepo "rxradar/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDrugService(t *testing.T) (*drugService, *mockRepo.MockDrugRepository) {
	t.Helper()

	mockDrugRepo := mockRepo.NewMockDrugRepository(t)
	cfg := &config.Config{
		Search: &config.SearchConfig{
			SuggestMinChars:   2,
			SuggestMaxResults: 10,
		},
	}

	service := NewDrugService(DrugServiceParams{
		DrugRepo: mockDrugRepo,
		Config:   cfg,
	})

	return service.(*drugService), mockDrugRepo
}

func TestDrugService_Suggest_ShortQuerySkipsStorage(t *testing.T) {
	service, _ := newDrugService(t)

	suggestions, err := service.Suggest(context.Background(), "a", 10)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestDrugService_Suggest_TrimsWhitespaceBeforeLengthCheck(t *testing.T) {
	service, _ := newDrugService(t)

	suggestions, err := service.Suggest(context.Background(), "  a  ", 10)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestDrugService_Suggest_ReturnsCatalogMatches(t *testing.T) {
	service, mockDrugRepo := newDrugService(t)

	ctx := context.Background()
	mockDrugRepo.EXPECT().
		SuggestByName(ctx, "lip", 10).
		Return([]*entity.Drug{
			{ID: 7, BrandName: "Lipitor", TherapeuticClass: "Statin"},
			{ID: 9, BrandName: "Lipofen", TherapeuticClass: "Fibrate"},
		}, nil)

	suggestions, err := service.Suggest(ctx, "lip", 0)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, int64(7), suggestions[0].DrugID)
	assert.Equal(t, "Lipitor", suggestions[0].BrandName)
	assert.Equal(t, "Statin", suggestions[0].TherapeuticClass)
}

func TestDrugService_Suggest_CapsRequestedLimit(t *testing.T) {
	service, mockDrugRepo := newDrugService(t)

	ctx := context.Background()
	mockDrugRepo.EXPECT().
		SuggestByName(ctx, "lip", 10).
		Return([]*entity.Drug{}, nil)

	suggestions, err := service.Suggest(ctx, "lip", 500)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}
