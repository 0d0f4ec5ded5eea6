package entity

import (
	"time"

	domainerrors "farmlink/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	MinFeedbackRating = 1
	MaxFeedbackRating = 5
)

// Feedback is a rating one account leaves for another after trading.
type Feedback struct {
	ID                uuid.UUID `json:"id"`
	ReviewerID        uuid.UUID `json:"reviewer_id"`
	ReviewedAccountID uuid.UUID `json:"reviewed_account_id"`
	Rating            int       `json:"rating"`
	Comment           string    `json:"comment"`
	CreatedAt         time.Time `json:"created_at"`
}

// Validate rejects self-reviews and out-of-range ratings.
func (f *Feedback) Validate() error {
	if f.ReviewerID == f.ReviewedAccountID {
		return domainerrors.ErrValidationFailed.WithDetails("accounts cannot review themselves")
	}
	if f.Rating < MinFeedbackRating || f.Rating > MaxFeedbackRating {
		return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	return nil
}
