package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FarmerProfileModel mirrors the 'farmer_profiles' table.
// AccountID is the primary key, so an account can own at most one row.
type FarmerProfileModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsGroup   bool      `gorm:"not null"`

	FarmSize          *float64 `gorm:"type:decimal(10,2)"`
	FarmSizeUnit      string   `gorm:"type:varchar(10);not null"`
	YearsOfExperience *int

	GroupName               string `gorm:"type:varchar(255)"`
	GroupRegistrationNumber string `gorm:"type:varchar(100)"`
	GroupMembersCount       *int
	GroupFormationDate      *time.Time `gorm:"type:date"`

	CropTypes           []*CropModel `gorm:"many2many:farmer_profile_crops;joinForeignKey:FarmerAccountID;joinReferences:CropID"`
	ExpectedHarvestDate *time.Time   `gorm:"type:date"`
	IDCardNumber        string       `gorm:"type:varchar(50)"`
	Certification       string       `gorm:"type:varchar(255)"`
	ContactPerson       string       `gorm:"type:varchar(255)"`
	ContactPhone        string       `gorm:"type:varchar(17)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmerProfileModel) TableName() string {
	return "farmer_profiles"
}

// DeliveryAddressJSON is one element of buyer_profiles.additional_addresses.
type DeliveryAddressJSON struct {
	Label       string   `json:"label"`
	FullAddress string   `json:"full_address"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// BuyerProfileModel mirrors the 'buyer_profiles' table.
type BuyerProfileModel struct {
	AccountID              uuid.UUID                                `gorm:"type:uuid;primaryKey"`
	BusinessName           string                                   `gorm:"type:varchar(255);not null"`
	RegistrationNumber     string                                   `gorm:"type:varchar(100)"`
	CompanyType            string                                   `gorm:"type:varchar(20);not null"`
	PreferredProducts      []*CropModel                             `gorm:"many2many:buyer_profile_crops;joinForeignKey:BuyerAccountID;joinReferences:CropID"`
	DeliveryAddress        string                                   `gorm:"type:text;not null"`
	AdditionalAddresses    datatypes.JSONSlice[DeliveryAddressJSON] `gorm:"not null"`
	ContactPerson          string                                   `gorm:"type:varchar(255);not null"`
	ContactPhone           string                                   `gorm:"type:varchar(17);not null"`
	TaxIdentification      string                                   `gorm:"type:varchar(100)"`
	PreferredCommunication string                                   `gorm:"type:varchar(10);not null"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerProfileModel) TableName() string {
	return "buyer_profiles"
}
