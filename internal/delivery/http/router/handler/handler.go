// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/delivery/http/response"
	domainerrors "farmlink/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bindAndValidate decodes the request body into dst and runs its validate tags.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		details := "malformed request body"
		if httpErr, ok := err.(*echo.HTTPError); ok {
			if msg, ok := httpErr.Message.(string); ok {
				details = msg
			}
		}

		return domainerrors.ErrValidationFailed.WithDetails(details)
	}

	return c.Validate(dst)
}

// currentAccountID returns the caller set by the auth middleware.
func currentAccountID(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound.WithDetails("invalid " + name)
	}

	return id, nil
}
