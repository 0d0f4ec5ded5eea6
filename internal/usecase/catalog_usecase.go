package usecase

import (
	"context"
	"io"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCropInput defines a new catalog entry. Slug is derived from the name when empty.
type CreateCropInput struct {
	Name        string              `json:"name" validate:"required"`
	Category    entity.CropCategory `json:"category" validate:"required"`
	Description string              `json:"description,omitempty"`
	Slug        string              `json:"slug,omitempty"`
}

// CropUsecase manages the shared crop catalog.
type CropUsecase interface {
	CreateCrop(ctx context.Context, input *CreateCropInput) (*entity.Crop, error)
	ListCrops(ctx context.Context) ([]*entity.Crop, error)
	GetCrop(ctx context.Context, slug string) (*entity.Crop, error)
}

// CreateListingInput defines a new produce listing.
// Latitude and longitude must be given together or not at all.
type CreateListingInput struct {
	CropID        uuid.UUID             `json:"crop_id" validate:"required"`
	Variety       string                `json:"variety" validate:"required"`
	Quantity      float64               `json:"quantity" validate:"gt=0"`
	Unit          entity.ProduceUnit    `json:"unit,omitempty"`
	Quality       entity.ProduceQuality `json:"quality" validate:"required"`
	Price         int64                 `json:"price" validate:"gt=0"`
	AvailableFrom Date                  `json:"available_from"`
	Description   string                `json:"description,omitempty"`
	Latitude      *float64              `json:"latitude,omitempty"`
	Longitude     *float64              `json:"longitude,omitempty"`
}

// ListingQuery narrows ListListings. Radius applies only when Near is set.
type ListingQuery struct {
	CropSlug string
	Near     *Coordinates
	RadiusKm float64
}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// ListingView is a listing as shown to clients, with distance when a location query was made.
type ListingView struct {
	*entity.ProduceListing
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// UploadPhotoInput carries a listing photo upload.
type UploadPhotoInput struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// ProduceUsecase manages produce listings.
type ProduceUsecase interface {
	CreateListing(ctx context.Context, accountID uuid.UUID, input *CreateListingInput) (*ListingView, error)
	ListListings(ctx context.Context, query *ListingQuery) ([]*ListingView, error)
	GetListing(ctx context.Context, id uuid.UUID) (*ListingView, error)
	SetAvailability(ctx context.Context, accountID, listingID uuid.UUID, available bool) (*ListingView, error)
	UploadPhoto(ctx context.Context, accountID, listingID uuid.UUID, input *UploadPhotoInput) (*ListingView, error)

	// OpenPhoto streams a listing's stored photo. Callers close the reader.
	OpenPhoto(ctx context.Context, listingID uuid.UUID) (io.ReadCloser, string, error)
}

// SubmitFeedbackInput defines a rating left for another account.
type SubmitFeedbackInput struct {
	ReviewedAccountID uuid.UUID `json:"reviewed_account_id" validate:"required"`
	Rating            int       `json:"rating" validate:"required"`
	Comment           string    `json:"comment,omitempty"`
}

// FeedbackUsecase manages peer feedback between accounts.
type FeedbackUsecase interface {
	SubmitFeedback(ctx context.Context, reviewerID uuid.UUID, input *SubmitFeedbackInput) (*entity.Feedback, error)
	ListFeedback(ctx context.Context, accountID uuid.UUID) ([]*entity.Feedback, error)
}

// CreateMarketInput defines a market a buyer purchases at.
// Latitude and longitude must be given together or not at all.
type CreateMarketInput struct {
	Name         string      `json:"name" validate:"required,max=255"`
	ContactEmail string      `json:"contact_email" validate:"required,email,max=254"`
	ContactPhone string      `json:"contact_phone" validate:"required,phone"`
	MainCropIDs  []uuid.UUID `json:"main_crop_ids,omitempty"`
	Latitude     *float64    `json:"latitude,omitempty"`
	Longitude    *float64    `json:"longitude,omitempty"`
}

// MarketQuery narrows ListMarkets. Zero values mean no restriction.
type MarketQuery struct {
	CropSlug string
	BuyerID  uuid.UUID
}

// MarketView is a market as shown to clients.
type MarketView struct {
	*entity.Market
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// MarketUsecase manages buyer-owned markets.
type MarketUsecase interface {
	CreateMarket(ctx context.Context, accountID uuid.UUID, input *CreateMarketInput) (*MarketView, error)
	ListMarkets(ctx context.Context, query *MarketQuery) ([]*MarketView, error)
	GetMarket(ctx context.Context, id uuid.UUID) (*MarketView, error)
}
