package model

// DrugModel mirrors the 'drugs' reference catalog. Brand names are stored
// uppercased so lookups can match case-insensitively with an exact equality.
type DrugModel struct {
	ID                  int64  `gorm:"primary_key"`
	BrandName           string `gorm:"type:varchar(255);not null;uniqueIndex"`
	TherapeuticClass    string `gorm:"type:varchar(255)"`
	ControlledSubstance bool   `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (DrugModel) TableName() string {
	return "drugs"
}
