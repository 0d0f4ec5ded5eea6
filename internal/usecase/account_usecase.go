// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Any role sent by the client is ignored; registration always yields a guest.
type RegisterInput struct {
	Email             string          `json:"email" validate:"required,email,max=254"`
	Password          string          `json:"password" validate:"required"`
	Password2         string          `json:"password2" validate:"required"`
	PhoneNumber       string          `json:"phone_number,omitempty" validate:"omitempty,phone"`
	Location          string          `json:"location,omitempty" validate:"max=255"`
	PreferredLanguage entity.Language `json:"preferred_language,omitempty"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountInput is a partial update of the caller's own account.
// Role and verification status are deliberately absent.
type UpdateAccountInput struct {
	Email             *string          `json:"email,omitempty" validate:"omitempty,email,max=254"`
	PhoneNumber       *string          `json:"phone_number,omitempty" validate:"omitempty,phone"`
	Location          *string          `json:"location,omitempty" validate:"omitempty,max=255"`
	PreferredLanguage *entity.Language `json:"preferred_language,omitempty"`
}

// CreateAdminInput defines the data required to create an administrator.
type CreateAdminInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int64           `json:"expires_in"` // seconds
	Account     *entity.Account `json:"account"`
}

// AccountUsecase defines the interface for account-related business operations.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetMe(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateMe(ctx context.Context, accountID uuid.UUID, input *UpdateAccountInput) (*entity.Account, error)

	// CreateAdmin creates a verified administrator. Not reachable over HTTP.
	CreateAdmin(ctx context.Context, input *CreateAdminInput) (*entity.Account, error)

	// SetVerified flips the verification flag of the account registered under email.
	// Not reachable over HTTP.
	SetVerified(ctx context.Context, email string, verified bool) (*entity.Account, error)
}
