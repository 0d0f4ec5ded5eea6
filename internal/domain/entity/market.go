package entity

import (
	"strings"
	"time"

	domainerrors "farmlink/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Market is a place a buyer purchases produce, with the crops it mainly takes.
type Market struct {
	ID             uuid.UUID  `json:"id"`
	BuyerID        uuid.UUID  `json:"buyer_id"`
	Name           string     `json:"name"`
	ContactEmail   string     `json:"contact_email"`
	ContactPhone   string     `json:"contact_phone"`
	MainCrops      []*Crop    `json:"main_crops"`
	Location       *orb.Point `json:"-"` // [lng, lat]
	GoogleMapsLink string     `json:"google_maps_link,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Validate checks the contact details and coordinates and derives the maps link.
func (m *Market) Validate() error {
	m.ContactEmail = NormalizeEmail(m.ContactEmail)

	switch {
	case strings.TrimSpace(m.Name) == "":
		return domainerrors.ErrValidationFailed.WithDetails("market name is required")
	case m.ContactEmail == "":
		return domainerrors.ErrValidationFailed.WithDetails("contact email is required")
	case !IsValidPhone(m.ContactPhone):
		return domainerrors.ErrValidationFailed.WithDetails("contact phone must look like +999999999 with 9 to 15 digits")
	}

	if err := checkLength("market name", m.Name, MaxShortTextLength); err != nil {
		return err
	}
	if err := checkLength("contact email", m.ContactEmail, MaxEmailLength); err != nil {
		return err
	}

	m.GoogleMapsLink = ""
	if m.Location != nil {
		if err := ValidateCoordinates(m.Location.Lat(), m.Location.Lon()); err != nil {
			return err
		}
		m.GoogleMapsLink = MapsLink(*m.Location)
	}

	return nil
}
