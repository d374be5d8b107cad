package repository

import (
	"context"

	"rxradar/internal/domain/entity"

	"github.com/paulmach/orb"
)

// PrescriberRepository reads the joined provider / address / coordinate /
// prescription-volume dataset.
type PrescriberRepository interface {
	// FindCandidatesInBound retrieves prescribers with claim volume for the
	// given drug whose practice coordinates lie inside the bounding box.
	// The box is a superset of the true radius circle; callers must apply
	// exact great-circle filtering downstream. Multi-address prescribers
	// yield exactly one row, chosen deterministically (lowest address id).
	FindCandidatesInBound(ctx context.Context, drugID int64, bound orb.Bound) ([]*entity.SearchCandidate, error)
}
