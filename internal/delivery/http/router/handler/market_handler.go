package handler

import (
	"net/http"

	"farmlink/internal/delivery/http/response"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MarketHandler serves the markets buyers register.
type MarketHandler struct {
	uc usecase.MarketUsecase
}

// NewMarketHandler is the constructor for MarketHandler, injected by Fx.
func NewMarketHandler(uc usecase.MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

func (h *MarketHandler) CreateMarket(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateMarketInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	market, err := h.uc.CreateMarket(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, market, "Market registered successfully")
}

// ListMarkets returns every market, optionally only those mainly buying crop=<slug>.
func (h *MarketHandler) ListMarkets(c echo.Context) error {
	markets, err := h.uc.ListMarkets(c.Request().Context(), &usecase.MarketQuery{CropSlug: c.QueryParam("crop")})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, markets, "")
}

// ListMyMarkets returns the caller's own markets.
func (h *MarketHandler) ListMyMarkets(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	markets, err := h.uc.ListMarkets(c.Request().Context(), &usecase.MarketQuery{BuyerID: accountID})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, markets, "")
}

func (h *MarketHandler) GetMarket(c echo.Context) error {
	marketID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	market, err := h.uc.GetMarket(c.Request().Context(), marketID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, market, "")
}
