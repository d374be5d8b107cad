package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SearchAnchor identifies the geographic origin of a radius search: either a
// 5-digit postal code or a raw coordinate pair.
type SearchAnchor struct {
	Zip string   `json:"zip,omitempty"`
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`
}

// SearchInput represents a prescriber search request. A single drug and a
// single anchor is the standard shape; multiple drugs or anchors form a
// compound search, which only premium tiers may run.
type SearchInput struct {
	Drugs       []string       `json:"drugs"`
	Anchors     []SearchAnchor `json:"anchors"`
	RadiusMiles float64        `json:"radius_miles"`
}

// Compound reports whether the input fans out over multiple drugs or anchors.
func (in *SearchInput) Compound() bool {
	return len(in.Drugs) > 1 || len(in.Anchors) > 1
}

// SearchResultItem is one prescriber in a search response, shaped for the
// presentation layer with redaction already applied.
type SearchResultItem struct {
	NPI           string  `json:"npi"`
	Name          string  `json:"name"`
	Specialty     *string `json:"specialty"`
	Street        string  `json:"street"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Zip           string  `json:"zip"`
	Drug          string  `json:"drug"`
	TotalClaims   int     `json:"total_claims"`
	DistanceMiles float64 `json:"distance_miles"`
	MatchScore    int     `json:"match_score"`
}

// SearchOutput is a completed search response.
type SearchOutput struct {
	Results    []*SearchResultItem `json:"results"`
	TotalCount int                 `json:"total_count"`
	SearchID   uuid.UUID           `json:"search_id"`
	IsPremium  bool                `json:"is_premium"`
}

// SearchUsecase runs the gated, geo-ranked prescriber search: eligibility
// check, anchor and drug resolution, radius query, scoring, ordering, and
// consumption accounting.
type SearchUsecase interface {
	// Search executes one search for the given user. Entitlement denials are
	// returned as domain AppErrors carrying a reason code; unknown drugs and
	// postal codes yield an empty result set rather than an error. Quota is
	// consumed only after a fully successful search.
	Search(ctx context.Context, userID uuid.UUID, input *SearchInput) (*SearchOutput, error)
}
