package handler

import (
	"net/http"

	"farmlink/internal/delivery/http/response"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FeedbackHandler serves ratings between accounts.
type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	reviewerID, err := currentAccountID(c)
	if err != nil {
		return err
	}

	input := new(usecase.SubmitFeedbackInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	feedback, err := h.uc.SubmitFeedback(c.Request().Context(), reviewerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, feedback, "Feedback submitted successfully")
}

// ListFeedback returns the feedback an account has received.
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	accountID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	feedback, err := h.uc.ListFeedback(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedback, "")
}
