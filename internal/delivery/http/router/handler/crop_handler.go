package handler

import (
	"net/http"

	"farmlink/internal/delivery/http/response"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CropHandler serves the crop catalog.
type CropHandler struct {
	uc usecase.CropUsecase
}

// NewCropHandler is the constructor for CropHandler, injected by Fx.
func NewCropHandler(uc usecase.CropUsecase) *CropHandler {
	return &CropHandler{uc: uc}
}

func (h *CropHandler) ListCrops(c echo.Context) error {
	crops, err := h.uc.ListCrops(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crops, "")
}

func (h *CropHandler) GetCrop(c echo.Context) error {
	crop, err := h.uc.GetCrop(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crop, "")
}

// CreateCrop adds a catalog entry. Admin only.
func (h *CropHandler) CreateCrop(c echo.Context) error {
	input := new(usecase.CreateCropInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	crop, err := h.uc.CreateCrop(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, crop, "Crop created successfully")
}
