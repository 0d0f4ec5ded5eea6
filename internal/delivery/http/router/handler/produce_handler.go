package handler

import (
	"net/http"
	"strconv"

	"farmlink/internal/delivery/http/response"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProduceHandler serves produce listings and their photos.
type ProduceHandler struct {
	uc usecase.ProduceUsecase
}

// NewProduceHandler is the constructor for ProduceHandler, injected by Fx.
func NewProduceHandler(uc usecase.ProduceUsecase) *ProduceHandler {
	return &ProduceHandler{uc: uc}
}

// AvailabilityRequest toggles whether a listing is offered.
type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// ListListings returns available listings.
// Query: crop=<slug>, lat and lng together for a radius search, radius_km to override the default.
func (h *ProduceHandler) ListListings(c echo.Context) error {
	query, err := listingQueryFrom(c)
	if err != nil {
		return err
	}

	listings, err := h.uc.ListListings(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

func (h *ProduceHandler) GetListing(c echo.Context) error {
	listingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	listing, err := h.uc.GetListing(c.Request().Context(), listingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// CreateListing publishes a listing owned by the calling farmer.
func (h *ProduceHandler) CreateListing(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateListingInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	listing, err := h.uc.CreateListing(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created successfully")
}

func (h *ProduceHandler) SetAvailability(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	listingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	req := new(AvailabilityRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	listing, err := h.uc.SetAvailability(c.Request().Context(), accountID, listingID, *req.IsAvailable)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing availability updated")
}

// UploadPhoto stores the raw request body as the listing photo.
func (h *ProduceHandler) UploadPhoto(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	listingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	req := c.Request()
	listing, err := h.uc.UploadPhoto(req.Context(), accountID, listingID, &usecase.UploadPhotoInput{
		ContentType: req.Header.Get(echo.HeaderContentType),
		Size:        req.ContentLength,
		Body:        req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Photo uploaded successfully")
}

// GetPhoto streams the listing photo.
func (h *ProduceHandler) GetPhoto(c echo.Context) error {
	listingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	body, contentType, err := h.uc.OpenPhoto(c.Request().Context(), listingID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer body.Close()

	return c.Stream(http.StatusOK, contentType, body)
}

func listingQueryFrom(c echo.Context) (*usecase.ListingQuery, error) {
	query := &usecase.ListingQuery{CropSlug: c.QueryParam("crop")}

	latRaw, lngRaw := c.QueryParam("lat"), c.QueryParam("lng")
	if (latRaw == "") != (lngRaw == "") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat and lng must be given together")
	}

	if latRaw != "" {
		lat, err := strconv.ParseFloat(latRaw, 64)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("lat must be a number")
		}
		lng, err := strconv.ParseFloat(lngRaw, 64)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("lng must be a number")
		}
		query.Near = &usecase.Coordinates{Latitude: lat, Longitude: lng}
	}

	if radiusRaw := c.QueryParam("radius_km"); radiusRaw != "" {
		radius, err := strconv.ParseFloat(radiusRaw, 64)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("radius_km must be a number")
		}
		query.RadiusKm = radius
	}

	return query, nil
}
