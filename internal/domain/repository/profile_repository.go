package repository

import (
	"context"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// FarmerProfileRepository persists farmer profiles keyed by their account ID.
type FarmerProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.FarmerProfile, error)

	// Create stores the profile and links its crop types.
	// A second profile for the same account fails with ErrProfileAlreadyExists.
	Create(ctx context.Context, profile *entity.FarmerProfile) error

	// Update saves scalar fields and replaces the crop type links.
	Update(ctx context.Context, profile *entity.FarmerProfile) error
}

// BuyerProfileRepository persists buyer profiles keyed by their account ID.
type BuyerProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.BuyerProfile, error)
	Create(ctx context.Context, profile *entity.BuyerProfile) error
	Update(ctx context.Context, profile *entity.BuyerProfile) error
}
