package model

// PrescriberModel mirrors the 'prescribers' provider identity table, keyed by
// NPI. Loaded from the external authoritative dataset; read-only here.
type PrescriberModel struct {
	NPI       string  `gorm:"type:char(10);primary_key"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Specialty *string `gorm:"type:varchar(255)"`

	Addresses []*PrescriberAddressModel `gorm:"foreignKey:NPI"`
	Claims    []*DrugClaimModel         `gorm:"foreignKey:NPI"`
}

// TableName explicitly sets the table name for GORM.
func (PrescriberModel) TableName() string {
	return "prescribers"
}

// PrescriberAddressModel mirrors the 'prescriber_addresses' table. A
// prescriber may carry several rows; search considers one, chosen by lowest
// id so the pick is deterministic.
type PrescriberAddressModel struct {
	ID     int64  `gorm:"primary_key"`
	NPI    string `gorm:"type:char(10);not null;index"`
	Street string `gorm:"type:varchar(255)"`
	City   string `gorm:"type:varchar(100)"`
	State  string `gorm:"type:char(2)"`
	Zip    string `gorm:"type:char(5);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PrescriberAddressModel) TableName() string {
	return "prescriber_addresses"
}

// DrugClaimModel mirrors the 'drug_claims' prescription-volume table: total
// claims per (drug, prescriber) pair.
type DrugClaimModel struct {
	DrugID      int64  `gorm:"primary_key;autoIncrement:false;index:idx_drug_claims_drug_npi"`
	NPI         string `gorm:"type:char(10);primary_key;index:idx_drug_claims_drug_npi"`
	TotalClaims int    `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (DrugClaimModel) TableName() string {
	return "drug_claims"
}
