package impl

import (
	"context"
	"log/slog"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
)

type feedbackService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(txManager repository.TransactionManager, logger *slog.Logger) usecase.FeedbackUsecase {
	return &feedbackService{txManager: txManager, logger: logger}
}

// SubmitFeedback records a rating from reviewerID for another existing account.
func (srv *feedbackService) SubmitFeedback(ctx context.Context, reviewerID uuid.UUID, input *usecase.SubmitFeedbackInput) (*entity.Feedback, error) {
	feedback := &entity.Feedback{
		ReviewerID:        reviewerID,
		ReviewedAccountID: input.ReviewedAccountID,
		Rating:            input.Rating,
		Comment:           input.Comment,
	}
	if err := feedback.Validate(); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if _, err := txRepoFactory.AccountRepo().FindByID(ctx, input.ReviewedAccountID); err != nil {
			return err
		}

		return txRepoFactory.FeedbackRepo().Create(ctx, feedback)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit feedback")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Feedback submitted",
		slog.String("reviewerID", reviewerID.String()),
		slog.String("reviewedAccountID", input.ReviewedAccountID.String()),
		slog.Int("rating", input.Rating))

	return feedback, nil
}

// ListFeedback returns feedback left for accountID, newest first.
func (srv *feedbackService) ListFeedback(ctx context.Context, accountID uuid.UUID) ([]*entity.Feedback, error) {
	var feedback []*entity.Feedback
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if _, err := txRepoFactory.AccountRepo().FindByID(ctx, accountID); err != nil {
			return err
		}

		var err error
		feedback, err = txRepoFactory.FeedbackRepo().ListForAccount(ctx, accountID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}
	if feedback == nil {
		feedback = []*entity.Feedback{}
	}

	return feedback, nil
}
