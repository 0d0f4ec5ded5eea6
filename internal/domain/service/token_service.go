package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess marks a short-lived access token.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
// The account ID travels in the registered "sub" claim; AccountID is its parsed form.
type Claims struct {
	AccountID uuid.UUID `json:"-"`
	Role      string    `json:"role"`
	Type      string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the account.
	GenerateAccessToken(accountID uuid.UUID, role string) (string, error)

	// ValidateToken checks signature, expiry and token type.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns how long issued tokens stay valid.
	AccessTokenDuration() time.Duration
}
