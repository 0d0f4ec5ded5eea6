package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. IDs are UUIDv7 values assigned by the application.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AccountModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email             string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	PasswordHash      string    `gorm:"type:varchar(255);not null"`
	Role              string    `gorm:"type:varchar(20);not null;index"`
	PhoneNumber       string    `gorm:"type:varchar(17)"`
	Location          string    `gorm:"type:varchar(255)"`
	Verified          bool      `gorm:"not null"`
	PreferredLanguage string    `gorm:"type:varchar(2);not null"`
	IsStaff           bool      `gorm:"not null"`
	IsSuperuser       bool      `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	FarmerProfile *FarmerProfileModel `gorm:"foreignKey:AccountID"`
	BuyerProfile  *BuyerProfileModel  `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
