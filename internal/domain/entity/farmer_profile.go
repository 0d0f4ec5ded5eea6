package entity

import (
	"strings"
	"time"

	domainerrors "farmlink/internal/domain/errors"

	"github.com/google/uuid"
)

// FarmUnit is the unit a farm size is expressed in.
type FarmUnit string

const (
	FarmUnitAcres       FarmUnit = "acres"
	FarmUnitHectares    FarmUnit = "hectares"
	FarmUnitSquareMeter FarmUnit = "sqm"
)

// IsValid checks if the FarmUnit is a known unit.
func (u FarmUnit) IsValid() bool {
	switch u {
	case FarmUnitAcres, FarmUnitHectares, FarmUnitSquareMeter:
		return true
	default:
		return false
	}
}

// FarmerProfile holds data specific to the "farmer" role.
// An individual farmer describes a farm; a group describes a cooperative.
type FarmerProfile struct {
	AccountID uuid.UUID `json:"account_id"` // Owning account; also the profile's identity.
	IsGroup   bool      `json:"is_group"`

	// Individual farmers
	FarmSize          *float64 `json:"farm_size,omitempty"`
	FarmSizeUnit      FarmUnit `json:"farm_size_unit,omitempty"`
	YearsOfExperience *int     `json:"years_of_experience,omitempty"`

	// Farmer groups
	GroupName               string     `json:"group_name,omitempty"`
	GroupRegistrationNumber string     `json:"group_registration_number,omitempty"`
	GroupMembersCount       *int       `json:"group_members_count,omitempty"`
	GroupFormationDate      *time.Time `json:"group_formation_date,omitempty"`

	CropTypes           []*Crop    `json:"crop_types"`
	ExpectedHarvestDate *time.Time `json:"expected_harvest_date,omitempty"`
	IDCardNumber        string     `json:"id_card_number"`
	Certification       string     `json:"certification"`
	ContactPerson       string     `json:"contact_person"`
	ContactPhone        string     `json:"contact_phone"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Validate is the one place the farmer sub-type rules are checked.
// Both creation and partial updates run the merged record through it.
func (p *FarmerProfile) Validate() error {
	p.clearInactiveFields()

	if p.IsGroup {
		if strings.TrimSpace(p.GroupName) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("group name is required for farmer groups")
		}
		if p.GroupMembersCount != nil && *p.GroupMembersCount < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("group members count cannot be negative")
		}
	} else {
		if p.FarmSize == nil {
			return domainerrors.ErrValidationFailed.WithDetails("farm size is required for individual farmers")
		}
		if err := checkQuantity("farm size", *p.FarmSize); err != nil {
			return err
		}
		if p.YearsOfExperience != nil && *p.YearsOfExperience < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("years of experience cannot be negative")
		}
	}

	if p.FarmSizeUnit == "" {
		p.FarmSizeUnit = FarmUnitAcres
	}
	if !p.FarmSizeUnit.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown farm size unit: " + string(p.FarmSizeUnit))
	}

	if err := checkLengths(MaxShortTextLength,
		"group name", p.GroupName,
		"certification", p.Certification,
		"contact person", p.ContactPerson,
	); err != nil {
		return err
	}
	if err := checkLength("group registration number", p.GroupRegistrationNumber, MaxIdentifierLength); err != nil {
		return err
	}
	if err := checkLength("id card number", p.IDCardNumber, MaxIDCardLength); err != nil {
		return err
	}

	if p.ContactPhone != "" && !IsValidPhone(p.ContactPhone) {
		return domainerrors.ErrValidationFailed.WithDetails("contact phone must look like +999999999 with 9 to 15 digits")
	}

	return nil
}

// clearInactiveFields drops the details of the sub-type the profile is not,
// so a group never keeps a farm size and an individual never keeps a group name.
func (p *FarmerProfile) clearInactiveFields() {
	if p.IsGroup {
		p.FarmSize = nil
		p.FarmSizeUnit = ""
		p.YearsOfExperience = nil

		return
	}

	p.GroupName = ""
	p.GroupRegistrationNumber = ""
	p.GroupMembersCount = nil
	p.GroupFormationDate = nil
}

// DisplayName mirrors how the profile is labelled in listings and admin views.
func (p *FarmerProfile) DisplayName(email string) string {
	if p.IsGroup {
		return p.GroupName + " (Group)"
	}

	return email + "'s farm"
}
