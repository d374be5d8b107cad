package entity

// Drug is a medication from the reference catalog. Brand names are matched
// case-insensitively through uppercase normalization.
type Drug struct {
	ID                  int64  // Internal catalog identifier.
	BrandName           string // Canonical brand name, stored uppercased.
	TherapeuticClass    string // Therapeutic class label.
	ControlledSubstance bool   // Whether the drug is a controlled substance.
}
