package entity

import (
	"fmt"
	"strconv"
	"time"

	domainerrors "farmlink/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ProduceUnit is the unit a listing's quantity and price refer to.
type ProduceUnit string

const (
	ProduceUnitKilogram ProduceUnit = "kg"
	ProduceUnitBag      ProduceUnit = "bag" // 50kg bags
	ProduceUnitBunch    ProduceUnit = "bunch"
	ProduceUnitPiece    ProduceUnit = "piece"
)

// IsValid checks if the ProduceUnit is supported.
func (u ProduceUnit) IsValid() bool {
	switch u {
	case ProduceUnitKilogram, ProduceUnitBag, ProduceUnitBunch, ProduceUnitPiece:
		return true
	default:
		return false
	}
}

// ProduceQuality is the grade a farmer assigns to a listing.
type ProduceQuality string

const (
	ProduceQualityTop      ProduceQuality = "top"
	ProduceQualityStandard ProduceQuality = "standard"
	ProduceQualityFair     ProduceQuality = "fair"
)

// IsValid checks if the ProduceQuality is a known grade.
func (q ProduceQuality) IsValid() bool {
	switch q {
	case ProduceQualityTop, ProduceQualityStandard, ProduceQualityFair:
		return true
	default:
		return false
	}
}

// ProduceListing is a farmer's offer of a quantity of one crop.
type ProduceListing struct {
	ID             uuid.UUID      `json:"id"`
	FarmerID       uuid.UUID      `json:"farmer_id"`
	CropID         uuid.UUID      `json:"crop_id"`
	Crop           *Crop          `json:"crop,omitempty"`
	Variety        string         `json:"variety"`
	Quantity       float64        `json:"quantity"`
	Unit           ProduceUnit    `json:"unit"`
	Quality        ProduceQuality `json:"quality"`
	Price          int64          `json:"price"` // whole shillings per unit
	AvailableFrom  time.Time      `json:"available_from"`
	PhotoKey       string         `json:"photo_key,omitempty"`
	Description    string         `json:"description"`
	Location       *orb.Point     `json:"-"` // [lng, lat]
	GoogleMapsLink string         `json:"google_maps_link,omitempty"`
	IsAvailable    bool           `json:"is_available"`
	ListedAt       time.Time      `json:"listed_at"`
}

// Validate checks quantities, enumerations and coordinates and fills in defaults.
func (l *ProduceListing) Validate() error {
	if l.Unit == "" {
		l.Unit = ProduceUnitKilogram
	}

	if l.Variety == "" {
		return domainerrors.ErrValidationFailed.WithDetails("variety is required")
	}
	if err := checkLength("variety", l.Variety, MaxNameLength); err != nil {
		return err
	}
	if err := checkQuantity("quantity", l.Quantity); err != nil {
		return err
	}

	switch {
	case l.Price <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
	case !l.Unit.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown unit: " + string(l.Unit))
	case !l.Quality.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown quality: " + string(l.Quality))
	case l.AvailableFrom.IsZero():
		return domainerrors.ErrValidationFailed.WithDetails("available from date is required")
	}

	if l.Location != nil {
		if err := ValidateCoordinates(l.Location.Lat(), l.Location.Lon()); err != nil {
			return err
		}
		l.GoogleMapsLink = MapsLink(*l.Location)
	} else {
		l.GoogleMapsLink = ""
	}

	return nil
}

// DistanceKm is the great-circle distance from the listing to p, or false when the listing has no location.
func (l *ProduceListing) DistanceKm(p orb.Point) (float64, bool) {
	if l.Location == nil {
		return 0, false
	}

	return geo.Distance(*l.Location, p) / 1000, true
}

// ValidateCoordinates rejects latitudes and longitudes outside their ranges, NaN included.
func ValidateCoordinates(lat, lng float64) error {
	if !IsFinite(lat) || lat < -90 || lat > 90 {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("latitude %v out of range", lat))
	}
	if !IsFinite(lng) || lng < -180 || lng > 180 {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("longitude %v out of range", lng))
	}

	return nil
}

// MapsLink builds a Google Maps link pointing at p.
func MapsLink(p orb.Point) string {
	return "https://www.google.com/maps?q=" +
		strconv.FormatFloat(p.Lat(), 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Lon(), 'f', -1, 64)
}
