package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "buyer@example.com" &&
				user.Name == "Buyer" &&
				user.PasswordHash == "hashed" &&
				user.Role == entity.RoleCustomer
		})).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()

			return nil
		})

	user, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     " Buyer ",
		Email:    " Buyer@Example.COM ",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.RegisterInput
		details string
	}{
		{name: "blank name", input: usecase.RegisterInput{Name: " ", Email: "a@b.c", Password: "password123"}, details: "name"},
		{name: "blank email", input: usecase.RegisterInput{Name: "A", Email: "", Password: "password123"}, details: "email"},
		{name: "short password", input: usecase.RegisterInput{Name: "A", Email: "a@b.c", Password: "short"}, details: "password"},
		{name: "long password", input: usecase.RegisterInput{Name: "A", Email: "a@b.c", Password: strings.Repeat("x", 73)}, details: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Register(context.Background(), &tt.input)

			appErr := requireAppError(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Buyer",
		Email:    "buyer@example.com",
		Password: "password123",
	})

	requireAppError(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("cost out of range"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Buyer",
		Email:    "buyer@example.com",
		Password: "password123",
	})

	requireAppError(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login(t *testing.T) {
	fx := createTestAuthService(t)
	user := &entity.User{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "hashed", Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("password123", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateToken(user).Return("signed.jwt.token", nil)

	out, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ADMIN@example.com", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "nobody@example.com", Password: "password123"})
		requireAppError(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(&entity.User{PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong-password", "hashed").Return(false)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "buyer@example.com", Password: "wrong-password"})
		requireAppError(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_UpdateMe(t *testing.T) {
	fx := createTestAuthService(t)
	userID := uuid.New()
	stored := &entity.User{ID: userID, Name: "Old", PasswordHash: "old-hash", Role: entity.RoleCustomer}

	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(stored, nil)
	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	fx.userRepo.EXPECT().Update(mock.Anything, stored).Return(nil)

	name := "New Name"
	address := " 부산시 해운대구 "
	password := "new-password"
	user, err := fx.service.UpdateMe(context.Background(), userID, &usecase.UpdateProfileInput{
		Name:     &name,
		Address:  &address,
		Password: &password,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "부산시 해운대구", user.Address)
	assert.Equal(t, "new-hash", user.PasswordHash)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestAuthService_GetMe_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	fx.userRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetMe(context.Background(), uuid.New())
	requireAppError(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Authenticate(t *testing.T) {
	fx := createTestAuthService(t)
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("good").
		Return(&service.Claims{UserID: userID, Email: "admin@example.com", Role: entity.RoleAdmin}, nil)
	fx.tokenService.EXPECT().
		ValidateToken("bad").
		Return(nil, errors.New("token is expired"))
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "admin@example.com", Role: entity.RoleAdmin}, nil).
		Once()

	actor, err := fx.service.Authenticate(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, userID, actor.UserID)
	assert.True(t, actor.IsAdmin())

	_, err = fx.service.Authenticate(context.Background(), "bad")
	requireAppError(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Authenticate_RoleFromStoredUser(t *testing.T) {
	fx := createTestAuthService(t)
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("demoted").
		Return(&service.Claims{UserID: userID, Email: "former-admin@example.com", Role: entity.RoleAdmin}, nil)
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "former-admin@example.com", Role: entity.RoleCustomer}, nil)

	actor, err := fx.service.Authenticate(context.Background(), "demoted")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, actor.Role)
	assert.False(t, actor.IsAdmin())
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().
		ValidateToken("orphan").
		Return(&service.Claims{UserID: uuid.New(), Role: entity.RoleCustomer}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Authenticate(context.Background(), "orphan")

	requireAppError(t, err, domainerrors.ErrInvalidToken)
}
