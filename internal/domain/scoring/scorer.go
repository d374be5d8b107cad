// Package scoring computes the composite 0-100 relevance score shown to
// patients as "% Match". The function is pure and deterministic; identical
// inputs always produce identical scores, so displayed values stay stable.
package scoring

import (
	"math"

	"rxradar/internal/domain/entity"
)

// Fixed component weights. The candidate set is already drug-filtered, so the
// drug-match component is a flat award.
const (
	drugMatchPoints     = 40.0
	proximityMaxPoints  = 25.0
	specialtyPoints     = 10.0
	volumeMaxPoints     = 15.0
	volumeClaimsDivisor = 100.0
)

// Score computes the match score for a candidate found within radiusMiles.
//
// Components: flat 40 for the drug match; up to 25 for proximity, linear in
// distance over the requested radius; flat 10 when any specialty is recorded;
// up to 15 for claim volume, saturating at 100 claims. The sum is rounded
// half-up and clamped to [0, 100].
func Score(candidate *entity.SearchCandidate, radiusMiles float64) int {
	total := drugMatchPoints

	if radiusMiles > 0 {
		proximity := 1 - candidate.DistanceMiles/radiusMiles
		if proximity > 0 {
			total += proximity * proximityMaxPoints
		}
	}

	if candidate.Prescriber.Specialty != nil && *candidate.Prescriber.Specialty != "" {
		total += specialtyPoints
	}

	volume := float64(candidate.TotalClaims) / volumeClaimsDivisor * volumeMaxPoints
	total += math.Min(volumeMaxPoints, volume)

	// Round half-up, then clamp.
	score := int(math.Floor(total + 0.5))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score
}
