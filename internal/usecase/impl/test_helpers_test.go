package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the next Execute against a fresh repository
// factory prepared by setup.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
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

// requireAppError asserts err carries target and returns the application error for inspection.
func requireAppError(t *testing.T, err error, target *domainerrors.BaseError) domainerrors.AppError {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, target)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))

	return appErr
}
