package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"quicksell/config"
	"quicksell/internal/domain/repository"
	mockRepo "quicksell/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Listing: &config.ListingConfig{
			Lifetime:    7 * 24 * time.Hour,
			PageSize:    10,
			MaxPageSize: 50,
		},
		Notification: &config.NotificationConfig{
			MaxDeviceFailures: 3,
		},
		QRCode: &config.QRCodeConfig{
			BaseURL: "https://quicksell.test/",
		},
	}
}

// expectTx makes the transaction manager run the callback against a factory prepared by setup.
func expectTx(t *testing.T, ctx context.Context, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
