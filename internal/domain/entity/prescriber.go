// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/paulmach/orb"
)

// Prescriber is a clinician loaded from the authoritative provider dataset.
// It is read-only from the search engine's perspective. Search considers at
// most one practice address per prescriber.
type Prescriber struct {
	NPI       string          // The National Provider Identifier, the prescriber's primary key.
	Name      string          // The prescriber's display name.
	Specialty *string         // Free-text specialty. Nil when the dataset carries none.
	Address   PracticeAddress // The single practice address considered by search.
	Location  orb.Point       // Geographic coordinates derived from the practice postal code (lng, lat).
}

// PracticeAddress is the street address of a prescriber's practice.
type PracticeAddress struct {
	Street string
	City   string
	State  string
	Zip    string
}

// SearchCandidate is an ephemeral, per-request result row: a prescriber in
// range of the requested anchor, with its resolved distance and match score.
type SearchCandidate struct {
	Prescriber    Prescriber
	DrugID        int64   // The drug the candidate's claim volume was measured against.
	TotalClaims   int     // Prescription volume for the queried drug.
	DistanceMiles float64 // Exact great-circle distance from the anchor.
	MatchScore    int     // Composite relevance score in [0, 100].
}
