package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/delivery/http/response"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccountHandler serves registration, login and the caller's own account.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register creates a guest account.
func (h *AccountHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	account, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Info("Account registered", slog.String("account_id", account.ID.String()))

	return response.Success(c, http.StatusCreated, account, "Account registered successfully")
}

// Login exchanges credentials for an access token.
func (h *AccountHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GetMe returns the authenticated account.
func (h *AccountHandler) GetMe(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	account, err := h.uc.GetMe(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "")
}

// UpdateMe applies a partial update to the authenticated account.
func (h *AccountHandler) UpdateMe(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateAccountInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	account, err := h.uc.UpdateMe(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Account updated successfully")
}
