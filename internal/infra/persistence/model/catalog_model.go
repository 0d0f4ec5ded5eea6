package model

import (
	"time"

	"github.com/google/uuid"
)

// CropModel mirrors the 'crops' table.
type CropModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Category    string    `gorm:"type:varchar(20);not null;index"`
	Description string    `gorm:"type:text"`
	Slug        string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CropModel) TableName() string {
	return "crops"
}

// ProduceListingModel mirrors the 'produce_listings' table.
type ProduceListingModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FarmerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CropID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Crop           *CropModel `gorm:"foreignKey:CropID"`
	Variety        string     `gorm:"type:varchar(100);not null"`
	Quantity       float64    `gorm:"type:decimal(10,2);not null"`
	Unit           string     `gorm:"type:varchar(10);not null"`
	Quality        string     `gorm:"type:varchar(10);not null"`
	Price          int64      `gorm:"not null"`
	AvailableFrom  time.Time  `gorm:"type:date;not null"`
	PhotoKey       string     `gorm:"type:varchar(255)"`
	Description    string     `gorm:"type:text"`
	Latitude       *float64   `gorm:"type:decimal(9,6)"`
	Longitude      *float64   `gorm:"type:decimal(9,6)"`
	GoogleMapsLink string     `gorm:"type:varchar(255)"`
	IsAvailable    bool       `gorm:"not null;index"`
	ListedAt       time.Time  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ProduceListingModel) TableName() string {
	return "produce_listings"
}

// FeedbackModel mirrors the 'feedback' table.
type FeedbackModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReviewerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ReviewedAccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating            int       `gorm:"not null"`
	Comment           string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}

// MarketModel mirrors the 'markets' table.
type MarketModel struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	BuyerID        uuid.UUID    `gorm:"type:uuid;not null;index"`
	Name           string       `gorm:"type:varchar(255);not null"`
	ContactEmail   string       `gorm:"type:varchar(254);not null"`
	ContactPhone   string       `gorm:"type:varchar(20);not null"`
	MainCrops      []*CropModel `gorm:"many2many:market_crops;joinForeignKey:MarketID;joinReferences:CropID"`
	Latitude       *float64     `gorm:"type:decimal(9,6)"`
	Longitude      *float64     `gorm:"type:decimal(9,6)"`
	GoogleMapsLink string       `gorm:"type:varchar(255)"`
	CreatedAt      time.Time    `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MarketModel) TableName() string {
	return "markets"
}

// All lists every model, in dependency order, for AutoMigrate and the query generator.
func All() []any {
	return []any{
		&AccountModel{},
		&CropModel{},
		&FarmerProfileModel{},
		&BuyerProfileModel{},
		&ProduceListingModel{},
		&FeedbackModel{},
		&MarketModel{},
	}
}
