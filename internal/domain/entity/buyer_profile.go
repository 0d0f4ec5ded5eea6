package entity

import (
	"strings"
	"time"

	domainerrors "farmlink/internal/domain/errors"

	"github.com/google/uuid"
)

// CompanyType describes the kind of business a buyer runs.
type CompanyType string

const (
	CompanyTypeFactory     CompanyType = "factory"
	CompanyTypeWholesaler  CompanyType = "wholesaler"
	CompanyTypeSupermarket CompanyType = "supermarket"
	CompanyTypeProcessor   CompanyType = "processor"
	CompanyTypeIndividual  CompanyType = "individual"
	CompanyTypeExporter    CompanyType = "exporter"
	CompanyTypeRestaurant  CompanyType = "restaurant"
)

// IsValid checks if the CompanyType is one of the enumerated values.
func (c CompanyType) IsValid() bool {
	switch c {
	case CompanyTypeFactory, CompanyTypeWholesaler, CompanyTypeSupermarket, CompanyTypeProcessor,
		CompanyTypeIndividual, CompanyTypeExporter, CompanyTypeRestaurant:
		return true
	default:
		return false
	}
}

// CommunicationChannel is how a buyer prefers to be contacted.
type CommunicationChannel string

const (
	CommunicationEmail    CommunicationChannel = "email"
	CommunicationPhone    CommunicationChannel = "phone"
	CommunicationWhatsApp CommunicationChannel = "whatsapp"
)

// IsValid checks if the CommunicationChannel is supported.
func (c CommunicationChannel) IsValid() bool {
	switch c {
	case CommunicationEmail, CommunicationPhone, CommunicationWhatsApp:
		return true
	default:
		return false
	}
}

// DeliveryAddress is one extra drop-off point a buyer keeps on file.
type DeliveryAddress struct {
	Label       string   `json:"label"`
	FullAddress string   `json:"full_address"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// BuyerProfile holds data specific to the "buyer" role.
type BuyerProfile struct {
	AccountID              uuid.UUID            `json:"account_id"`
	BusinessName           string               `json:"business_name"`
	RegistrationNumber     string               `json:"registration_number"`
	CompanyType            CompanyType          `json:"company_type"`
	PreferredProducts      []*Crop              `json:"preferred_products"`
	DeliveryAddress        string               `json:"delivery_address"`
	AdditionalAddresses    []DeliveryAddress    `json:"additional_addresses"`
	ContactPerson          string               `json:"contact_person"`
	ContactPhone           string               `json:"contact_phone"`
	TaxIdentification      string               `json:"tax_identification"`
	PreferredCommunication CommunicationChannel `json:"preferred_communication"`
	CreatedAt              time.Time            `json:"created_at"`
	UpdatedAt              time.Time            `json:"updated_at"`
}

// Validate checks required fields and enumerations of a buyer profile.
func (p *BuyerProfile) Validate() error {
	switch {
	case strings.TrimSpace(p.BusinessName) == "":
		return domainerrors.ErrValidationFailed.WithDetails("business name is required")
	case !p.CompanyType.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown company type: " + string(p.CompanyType))
	case strings.TrimSpace(p.DeliveryAddress) == "":
		return domainerrors.ErrValidationFailed.WithDetails("delivery address is required")
	case strings.TrimSpace(p.ContactPerson) == "":
		return domainerrors.ErrValidationFailed.WithDetails("contact person is required")
	case !IsValidPhone(p.ContactPhone):
		return domainerrors.ErrValidationFailed.WithDetails("contact phone must look like +999999999 with 9 to 15 digits")
	}

	if err := checkLengths(MaxShortTextLength,
		"business name", p.BusinessName,
		"contact person", p.ContactPerson,
	); err != nil {
		return err
	}
	if err := checkLengths(MaxIdentifierLength,
		"registration number", p.RegistrationNumber,
		"tax identification", p.TaxIdentification,
	); err != nil {
		return err
	}

	if p.PreferredCommunication == "" {
		p.PreferredCommunication = CommunicationEmail
	}
	if !p.PreferredCommunication.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown communication channel: " + string(p.PreferredCommunication))
	}

	for _, addr := range p.AdditionalAddresses {
		if strings.TrimSpace(addr.FullAddress) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("additional address is missing its full address")
		}
		if addr.Latitude != nil && addr.Longitude != nil {
			if err := ValidateCoordinates(*addr.Latitude, *addr.Longitude); err != nil {
				return err
			}
		}
	}

	return nil
}
