package handler

import (
	"net/http"

	"farmlink/internal/delivery/http/response"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves farmer and buyer profile onboarding and maintenance.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// CreateFarmerProfile onboards the caller as a farmer.
func (h *ProfileHandler) CreateFarmerProfile(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateFarmerProfileInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	profile, err := h.uc.CreateFarmerProfile(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Farmer profile created successfully")
}

// GetFarmerProfile returns the caller's account together with its farmer profile.
func (h *ProfileHandler) GetFarmerProfile(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	out, err := h.uc.GetFarmerProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "")
}

// UpdateFarmerProfile patches the caller's farmer profile.
func (h *ProfileHandler) UpdateFarmerProfile(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateFarmerProfileInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	profile, err := h.uc.UpdateFarmerProfile(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Farmer profile updated successfully")
}

// FarmerProfileQRCode renders the caller's share code as a PNG.
func (h *ProfileHandler) FarmerProfileQRCode(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.FarmerProfileQRCode(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateBuyerProfile onboards the caller as a buyer.
func (h *ProfileHandler) CreateBuyerProfile(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateBuyerProfileInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	profile, err := h.uc.CreateBuyerProfile(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Buyer profile created successfully")
}

// GetBuyerProfile returns the caller's account together with its buyer profile.
func (h *ProfileHandler) GetBuyerProfile(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	out, err := h.uc.GetBuyerProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "")
}

// UpdateBuyerProfile patches the caller's buyer profile.
func (h *ProfileHandler) UpdateBuyerProfile(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateBuyerProfileInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	profile, err := h.uc.UpdateBuyerProfile(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Buyer profile updated successfully")
}
