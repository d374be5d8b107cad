package model

import (
	"time"

	"github.com/google/uuid"
)

// UserAccessModel mirrors the 'user_access' table, the single mutable
// relation owned by this service: one entitlement row per user.
type UserAccessModel struct {
	UserID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Plan           string    `gorm:"type:varchar(16);not null;default:'FREE'"`
	SearchesUsed   int       `gorm:"not null;default:0"`
	MonthStart     time.Time `gorm:"not null"`
	ExpiresAt      *time.Time
	SubscriptionID *string `gorm:"type:varchar(64)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserAccessModel) TableName() string {
	return "user_access"
}
