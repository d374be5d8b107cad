package postgres

import (
	"context"

	"rxradar/internal/domain/entity"
	"rxradar/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// prescriberRepository implements the repository.PrescriberRepository interface.
type prescriberRepository struct {
	db *gorm.DB
}

// NewPrescriberRepository is the constructor for prescriberRepository.
func NewPrescriberRepository(db *gorm.DB) repository.PrescriberRepository {
	return &prescriberRepository{
		db: db,
	}
}

// candidateRow is the scan target for the joined candidate query.
type candidateRow struct {
	NPI         string
	Name        string
	Specialty   *string
	Street      string
	City        string
	State       string
	Zip         string
	Latitude    float64
	Longitude   float64
	TotalClaims int
}

// FindCandidatesInBound joins provider identity, practice address, postal
// coordinates, and prescription volume, pre-filtered to the bounding box.
// DISTINCT ON keeps exactly one address row per prescriber, lowest id first,
// so multi-address providers appear once and deterministically. The box is a
// superset of the radius circle; exact great-circle filtering happens in the
// caller.
func (repo *prescriberRepository) FindCandidatesInBound(ctx context.Context, drugID int64, bound orb.Bound) ([]*entity.SearchCandidate, error) {
	var rows []*candidateRow

	query := `
		SELECT DISTINCT ON (p.npi)
		       p.npi,
		       p.name,
		       p.specialty,
		       a.street,
		       a.city,
		       a.state,
		       a.zip,
		       z.latitude,
		       z.longitude,
		       c.total_claims
		FROM prescribers p
		JOIN prescriber_addresses a ON a.npi = p.npi
		JOIN zip_codes z ON z.zip = a.zip
		JOIN drug_claims c ON c.npi = p.npi AND c.drug_id = ?
		WHERE z.latitude BETWEEN ? AND ?
		  AND z.longitude BETWEEN ? AND ?
		ORDER BY p.npi, a.id
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, drugID, bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon()).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find prescriber candidates in bound")
	}

	candidates := make([]*entity.SearchCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, toCandidateDomain(row, drugID))
	}

	return candidates, nil
}

// --- Mapper Functions ---

// toCandidateDomain converts a joined candidate row to a domain SearchCandidate.
// Distance and score are computed by the caller.
func toCandidateDomain(row *candidateRow, drugID int64) *entity.SearchCandidate {
	return &entity.SearchCandidate{
		Prescriber: entity.Prescriber{
			NPI:       row.NPI,
			Name:      row.Name,
			Specialty: row.Specialty,
			Address: entity.PracticeAddress{
				Street: row.Street,
				City:   row.City,
				State:  row.State,
				Zip:    row.Zip,
			},
			Location: orb.Point{row.Longitude, row.Latitude},
		},
		DrugID:      drugID,
		TotalClaims: row.TotalClaims,
	}
}
