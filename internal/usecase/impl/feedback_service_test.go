package impl

import (
	"context"
	"testing"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	mockRepo "farmlink/internal/mocks/repository"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackService_SubmitFeedback(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewFeedbackService(txManager, newDiscardLogger())

	ctx := context.Background()
	reviewer, reviewed := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())

	onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().FeedbackRepo().Return(feedbackRepo)
		accountRepo.EXPECT().FindByID(ctx, reviewed).Return(&entity.Account{ID: reviewed}, nil)
		feedbackRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Feedback")).Return(nil)
	})

	feedback, err := service.SubmitFeedback(ctx, reviewer, &usecase.SubmitFeedbackInput{
		ReviewedAccountID: reviewed,
		Rating:            4,
		Comment:           "Paid on delivery",
	})

	require.NoError(t, err)
	assert.Equal(t, reviewer, feedback.ReviewerID)
	assert.Equal(t, 4, feedback.Rating)
}

func TestFeedbackService_SubmitFeedback_Rejections(t *testing.T) {
	reviewer := uuid.Must(uuid.NewV7())

	tests := []struct {
		name  string
		input usecase.SubmitFeedbackInput
	}{
		{name: "self review", input: usecase.SubmitFeedbackInput{ReviewedAccountID: reviewer, Rating: 5}},
		{name: "rating too high", input: usecase.SubmitFeedbackInput{ReviewedAccountID: uuid.Must(uuid.NewV7()), Rating: 6}},
		{name: "rating too low", input: usecase.SubmitFeedbackInput{ReviewedAccountID: uuid.Must(uuid.NewV7()), Rating: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager := mockRepo.NewMockTransactionManager(t)
			service := NewFeedbackService(txManager, newDiscardLogger())

			_, err := service.SubmitFeedback(context.Background(), reviewer, &tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestFeedbackService_SubmitFeedback_UnknownAccount(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewFeedbackService(txManager, newDiscardLogger())

	ctx := context.Background()
	reviewed := uuid.Must(uuid.NewV7())

	onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByID(ctx, reviewed).Return(nil, domainerrors.ErrAccountNotFound)
	})

	_, err := service.SubmitFeedback(ctx, uuid.Must(uuid.NewV7()), &usecase.SubmitFeedbackInput{ReviewedAccountID: reviewed, Rating: 3})

	require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestFeedbackService_ListFeedback_Empty(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewFeedbackService(txManager, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV7())

	onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().FeedbackRepo().Return(feedbackRepo)
		accountRepo.EXPECT().FindByID(ctx, accountID).Return(&entity.Account{ID: accountID}, nil)
		feedbackRepo.EXPECT().ListForAccount(ctx, accountID).Return(nil, nil)
	})

	feedback, err := service.ListFeedback(ctx, accountID)

	require.NoError(t, err)
	assert.NotNil(t, feedback)
	assert.Empty(t, feedback)
}
