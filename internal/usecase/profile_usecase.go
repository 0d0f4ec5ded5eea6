package usecase

import (
	"context"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
// Creating a profile promotes the account to the matching role in the same transaction.
type ProfileUsecase interface {
	CreateFarmerProfile(ctx context.Context, accountID uuid.UUID, input *CreateFarmerProfileInput) (*entity.FarmerProfile, error)
	GetFarmerProfile(ctx context.Context, accountID uuid.UUID) (*AccountWithFarmerProfile, error)
	UpdateFarmerProfile(ctx context.Context, accountID uuid.UUID, input *UpdateFarmerProfileInput) (*entity.FarmerProfile, error)
	FarmerProfileQRCode(ctx context.Context, accountID uuid.UUID) ([]byte, error)

	CreateBuyerProfile(ctx context.Context, accountID uuid.UUID, input *CreateBuyerProfileInput) (*entity.BuyerProfile, error)
	GetBuyerProfile(ctx context.Context, accountID uuid.UUID) (*AccountWithBuyerProfile, error)
	UpdateBuyerProfile(ctx context.Context, accountID uuid.UUID, input *UpdateBuyerProfileInput) (*entity.BuyerProfile, error)
}

// --- Input DTOs ---

// CreateFarmerProfileInput defines the data required to onboard as a farmer.
// Individual farmers fill the farm fields, groups the group fields.
type CreateFarmerProfileInput struct {
	IsGroup bool `json:"is_group"`

	FarmSize          *float64        `json:"farm_size,omitempty"`
	FarmSizeUnit      entity.FarmUnit `json:"farm_size_unit,omitempty"`
	YearsOfExperience *int            `json:"years_of_experience,omitempty"`

	GroupName               string `json:"group_name,omitempty"`
	GroupRegistrationNumber string `json:"group_registration_number,omitempty"`
	GroupMembersCount       *int   `json:"group_members_count,omitempty"`
	GroupFormationDate      *Date  `json:"group_formation_date,omitempty"`

	CropTypeIDs         []uuid.UUID `json:"crop_types,omitempty"`
	ExpectedHarvestDate *Date       `json:"expected_harvest_date,omitempty"`
	IDCardNumber        string      `json:"id_card_number,omitempty"`
	Certification       string      `json:"certification,omitempty"`
	ContactPerson       string      `json:"contact_person,omitempty"`
	ContactPhone        string      `json:"contact_phone,omitempty"`
}

// UpdateFarmerProfileInput is a partial update; nil fields are left untouched.
type UpdateFarmerProfileInput struct {
	IsGroup *bool `json:"is_group,omitempty"`

	FarmSize          *float64         `json:"farm_size,omitempty"`
	FarmSizeUnit      *entity.FarmUnit `json:"farm_size_unit,omitempty"`
	YearsOfExperience *int             `json:"years_of_experience,omitempty"`

	GroupName               *string `json:"group_name,omitempty"`
	GroupRegistrationNumber *string `json:"group_registration_number,omitempty"`
	GroupMembersCount       *int    `json:"group_members_count,omitempty"`
	GroupFormationDate      *Date   `json:"group_formation_date,omitempty"`

	CropTypeIDs         *[]uuid.UUID `json:"crop_types,omitempty"`
	ExpectedHarvestDate *Date        `json:"expected_harvest_date,omitempty"`
	IDCardNumber        *string      `json:"id_card_number,omitempty"`
	Certification       *string      `json:"certification,omitempty"`
	ContactPerson       *string      `json:"contact_person,omitempty"`
	ContactPhone        *string      `json:"contact_phone,omitempty"`
}

// CreateBuyerProfileInput defines the data required to onboard as a buyer.
type CreateBuyerProfileInput struct {
	BusinessName           string                      `json:"business_name"`
	RegistrationNumber     string                      `json:"registration_number,omitempty"`
	CompanyType            entity.CompanyType          `json:"company_type"`
	PreferredProductIDs    []uuid.UUID                 `json:"preferred_products,omitempty"`
	DeliveryAddress        string                      `json:"delivery_address"`
	AdditionalAddresses    []entity.DeliveryAddress    `json:"additional_addresses,omitempty"`
	ContactPerson          string                      `json:"contact_person"`
	ContactPhone           string                      `json:"contact_phone"`
	TaxIdentification      string                      `json:"tax_identification,omitempty"`
	PreferredCommunication entity.CommunicationChannel `json:"preferred_communication,omitempty"`
}

// UpdateBuyerProfileInput is a partial update; nil fields are left untouched.
type UpdateBuyerProfileInput struct {
	BusinessName           *string                      `json:"business_name,omitempty"`
	RegistrationNumber     *string                      `json:"registration_number,omitempty"`
	CompanyType            *entity.CompanyType          `json:"company_type,omitempty"`
	PreferredProductIDs    *[]uuid.UUID                 `json:"preferred_products,omitempty"`
	DeliveryAddress        *string                      `json:"delivery_address,omitempty"`
	AdditionalAddresses    *[]entity.DeliveryAddress    `json:"additional_addresses,omitempty"`
	ContactPerson          *string                      `json:"contact_person,omitempty"`
	ContactPhone           *string                      `json:"contact_phone,omitempty"`
	TaxIdentification      *string                      `json:"tax_identification,omitempty"`
	PreferredCommunication *entity.CommunicationChannel `json:"preferred_communication,omitempty"`
}

// --- Output DTOs ---

// AccountWithFarmerProfile is the account decorated with its farmer profile.
type AccountWithFarmerProfile struct {
	*entity.Account
	FarmerProfile *entity.FarmerProfile `json:"farmer_profile"`
}

// AccountWithBuyerProfile is the account decorated with its buyer profile.
type AccountWithBuyerProfile struct {
	*entity.Account
	BuyerProfile *entity.BuyerProfile `json:"buyer_profile"`
}
