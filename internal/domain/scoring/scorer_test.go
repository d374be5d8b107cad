package scoring

import (
	"testing"

	"rxradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func candidate(distance float64, claims int, specialty *string) *entity.SearchCandidate {
	return &entity.SearchCandidate{
		Prescriber:    entity.Prescriber{Specialty: specialty},
		DistanceMiles: distance,
		TotalClaims:   claims,
	}
}

func strPtr(s string) *string { return &s }

func TestScore_ReferenceScenario(t *testing.T) {
	// 3.2 miles out of a 10 mile radius, 80 claims, specialty present:
	// 40 + (1-0.32)*25 + 10 + min(15, 0.8*15) = 40 + 17 + 10 + 12 = 79.
	got := Score(candidate(3.2, 80, strPtr("Endocrinology")), 10)
	assert.Equal(t, 79, got)
}

func TestScore_Components(t *testing.T) {
	tests := []struct {
		name      string
		distance  float64
		claims    int
		specialty *string
		radius    float64
		want      int
	}{
		{name: "zero distance full volume with specialty", distance: 0, claims: 1000, specialty: strPtr("Cardiology"), radius: 10, want: 90},
		{name: "zero distance full volume no specialty", distance: 0, claims: 1000, specialty: nil, radius: 10, want: 80},
		{name: "at radius edge no volume no specialty", distance: 10, claims: 0, specialty: nil, radius: 10, want: 40},
		{name: "empty specialty string treated as absent", distance: 10, claims: 0, specialty: strPtr(""), radius: 10, want: 40},
		{name: "volume saturates at 100 claims", distance: 10, claims: 100, specialty: nil, radius: 10, want: 55},
		{name: "volume beyond saturation adds nothing", distance: 10, claims: 5000, specialty: nil, radius: 10, want: 55},
		{name: "half radius", distance: 5, claims: 0, specialty: nil, radius: 10, want: 53},
		{name: "rounds half up", distance: 9.8, claims: 0, specialty: nil, radius: 10, want: 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(candidate(tt.distance, tt.claims, tt.specialty), tt.radius)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	// Exhaustive-ish grid: score stays inside [0, 100] for all inputs.
	distances := []float64{0, 0.5, 3.2, 9.99, 10, 25, 100}
	claims := []int{0, 1, 50, 99, 100, 101, 100000}
	radii := []float64{1, 10, 25, 100}

	for _, d := range distances {
		for _, c := range claims {
			for _, r := range radii {
				for _, sp := range []*string{nil, strPtr("Internal Medicine")} {
					got := Score(candidate(d, c, sp), r)
					assert.GreaterOrEqual(t, got, 0)
					assert.LessOrEqual(t, got, 100)
				}
			}
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	c := candidate(3.2, 80, strPtr("Endocrinology"))
	first := Score(c, 10)
	for range 10 {
		assert.Equal(t, first, Score(c, 10))
	}
}
