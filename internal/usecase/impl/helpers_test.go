package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"farmlink/config"
	"farmlink/internal/domain/repository"
	mockRepo "farmlink/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:  4,
			MinPassword: 8,
		},
		Storage: &config.StorageConfig{
			BucketURL:     "mem://",
			MaxPhotoBytes: 1 << 10,
		},
		Produce: &config.ProduceConfig{
			DefaultRadiusKm: 25,
			MaxRadiusKm:     200,
		},
	}
}

// onExecute makes txManager run the callback against a fresh mock factory
// prepared by setup, returning whatever the callback returns.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
