package handler

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_UpdateUser_PromotesRole(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC})
	userID := uuid.New()

	userUC.EXPECT().
		UpdateUser(mock.Anything, userID, mock.AnythingOfType("*usecase.UpdateUserInput")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
			require.NotNil(t, input.Role)
			assert.Equal(t, "admin", *input.Role)
			assert.Nil(t, input.Email)

			return &entity.User{ID: userID, Role: entity.RoleAdmin}, nil
		})

	c, rec := newTestContext(testRequest{
		method: http.MethodPut,
		path:   "/api/users/" + userID.String(),
		params: map[string]string{"id": userID.String()},
		body:   `{"role":"admin"}`,
	})

	require.NoError(t, h.UpdateUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_UpdateUser_UnknownRole(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC})
	userID := uuid.New()

	c, _ := newTestContext(testRequest{
		method: http.MethodPut,
		path:   "/api/users/" + userID.String(),
		params: map[string]string{"id": userID.String()},
		body:   `{"role":"superuser"}`,
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, h.UpdateUser(c), &validationErrs)
	assert.Equal(t, "role", validationErrs[0].Field())
}
