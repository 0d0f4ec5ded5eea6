package repository

import (
	"context"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// CropRepository defines persistence for the shared crop catalog.
type CropRepository interface {
	FindBySlug(ctx context.Context, slug string) (*entity.Crop, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Crop, error)

	// FindByIDs returns the crops matching ids; missing IDs are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Crop, error)

	// List returns the catalog ordered by name.
	List(ctx context.Context) ([]*entity.Crop, error)

	// Create fails with ErrCropAlreadyExists when the name or slug is taken.
	Create(ctx context.Context, crop *entity.Crop) error
}

// ListingFilter narrows ListAvailable. Zero values mean no restriction.
type ListingFilter struct {
	CropSlug string
	FarmerID uuid.UUID
}

// ProduceRepository defines persistence for produce listings.
type ProduceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProduceListing, error)

	// ListAvailable returns available listings, newest first, with their crop attached.
	ListAvailable(ctx context.Context, filter ListingFilter) ([]*entity.ProduceListing, error)

	Create(ctx context.Context, listing *entity.ProduceListing) error
	Update(ctx context.Context, listing *entity.ProduceListing) error
}

// FeedbackRepository defines persistence for peer feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error

	// ListForAccount returns feedback left for accountID, newest first.
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Feedback, error)
}

// MarketFilter narrows MarketRepository.List. Zero values mean no restriction.
type MarketFilter struct {
	CropSlug string
	BuyerID  uuid.UUID
}

// MarketRepository defines persistence for buyer-owned markets.
type MarketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Market, error)

	// List returns markets, newest first, with their main crops attached.
	List(ctx context.Context, filter MarketFilter) ([]*entity.Market, error)

	// Create stores the market and links its main crops.
	Create(ctx context.Context, market *entity.Market) error
}
