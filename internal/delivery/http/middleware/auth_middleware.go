package middleware

import (
	"strings"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests with the access tokens issued at login.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate rejects the request with 401 unless it carries a valid bearer token.
// On success the account ID and role claim are available through the delivery context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is required")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header must be a bearer token")
		}

		claims, err := m.tokenService.ValidateToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		deliverycontext.SetPrincipal(c, claims.AccountID, entity.Role(claims.Role))

		return next(c)
	}
}

// RequireRole allows the request through only when the token's role is one of roles.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := deliverycontext.GetAccountID(c); !ok {
				return domainerrors.ErrUnauthorized
			}

			if !allowed.Contains(deliverycontext.GetRole(c)) {
				return domainerrors.ErrForbidden.WithDetails("insufficient role for this operation")
			}

			return next(c)
		}
	}
}
