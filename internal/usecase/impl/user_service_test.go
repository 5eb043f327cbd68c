package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)

	return NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	}), userRepo
}

func TestUserService_UpdateUser_PromotesToAdmin(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	id := uuid.New()
	stored := &entity.User{ID: id, Email: "buyer@example.com", Name: "Buyer", Role: entity.RoleCustomer}

	userRepo.EXPECT().FindByID(mock.Anything, id).Return(stored, nil)
	userRepo.EXPECT().Update(mock.Anything, stored).Return(nil)

	role := "admin"
	email := " New@Example.com "
	user, err := svc.UpdateUser(context.Background(), id, &usecase.UpdateUserInput{Role: &role, Email: &email})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "Buyer", user.Name)
}

func TestUserService_UpdateUser_InvalidRole(t *testing.T) {
	svc, userRepo := createTestUserService(t)

	userRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(&entity.User{}, nil)

	role := "superuser"
	_, err := svc.UpdateUser(context.Background(), uuid.New(), &usecase.UpdateUserInput{Role: &role})

	appErr := requireAppError(t, err, domainerrors.ErrInvalidRole)
	assert.Equal(t, "superuser", appErr.Details())
}

func TestUserService_UpdateUser_EmailTaken(t *testing.T) {
	svc, userRepo := createTestUserService(t)

	userRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(&entity.User{}, nil)
	userRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	email := "taken@example.com"
	_, err := svc.UpdateUser(context.Background(), uuid.New(), &usecase.UpdateUserInput{Email: &email})

	requireAppError(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_DeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		target  *domainerrors.BaseError
	}{
		{name: "deleted"},
		{name: "missing", repoErr: repository.ErrUserNotFound, target: domainerrors.ErrUserNotFound},
		{name: "has orders", repoErr: domainerrors.ErrUserHasOrders, target: domainerrors.ErrUserHasOrders},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo := createTestUserService(t)
			id := uuid.New()

			userRepo.EXPECT().Delete(mock.Anything, id).Return(tt.repoErr)

			err := svc.DeleteUser(context.Background(), id)
			if tt.target == nil {
				require.NoError(t, err)

				return
			}
			requireAppError(t, err, tt.target)
		})
	}
}

func TestUserService_ListUsers(t *testing.T) {
	svc, userRepo := createTestUserService(t)

	userRepo.EXPECT().List(mock.Anything).Return([]*entity.User{{Name: "A"}, {Name: "B"}}, nil)

	users, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}
