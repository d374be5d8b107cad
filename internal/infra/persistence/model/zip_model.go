package model

// ZipCodeModel mirrors the 'zip_codes' reference table mapping 5-digit postal
// codes to coordinates. Read-only data loaded from the authoritative dataset.
// Coordinates are stored at 8 decimal places to avoid precision loss.
type ZipCodeModel struct {
	Zip       string  `gorm:"type:char(5);primary_key"`
	City      string  `gorm:"type:varchar(100);not null"`
	State     string  `gorm:"type:char(2);not null"`
	Latitude  float64 `gorm:"type:decimal(11,8);not null;index:idx_zip_codes_lat_lng"`
	Longitude float64 `gorm:"type:decimal(11,8);not null;index:idx_zip_codes_lat_lng"`
}

// TableName explicitly sets the table name for GORM.
func (ZipCodeModel) TableName() string {
	return "zip_codes"
}
