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

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:    svc,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_New(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{}, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.MatchedBy(func(device *entity.UserDevice) bool {
			return device.UserID == userID &&
				device.PushToken == "fcm-token" &&
				device.DeviceID == "device-1" &&
				device.Platform == "ios" &&
				device.IsActive
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		PushToken: " fcm-token ",
		DeviceID:  "device-1",
		Platform:  "iOS",
	})

	require.NoError(t, err)
	assert.Equal(t, "ios", device.Platform)
}

func TestDeviceService_RegisterDevice_RefreshesToken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "device-1", PushToken: "old"}
	refreshed := &entity.UserDevice{ID: existing.ID, UserID: userID, DeviceID: "device-1", PushToken: "new", IsActive: true}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().UpdatePushToken(ctx, existing.ID, "new").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{PushToken: "new", DeviceID: "device-1"})

	require.NoError(t, err)
	assert.Equal(t, "new", device.PushToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{DeviceID: "d"})
	appErr := requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, "token", appErr.Details())

	_, err = fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{PushToken: "t"})
	appErr = requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, "deviceId", appErr.Details())
}

func TestDeviceService_DeleteDevice(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, deviceID).Return(nil)

		require.NoError(t, fx.service.DeleteDevice(context.Background(), userID, deviceID))
	})

	t.Run("other user", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.DeleteDevice(context.Background(), userID, deviceID)
		requireAppError(t, err, domainerrors.ErrDeviceNotFound)
		fx.deviceRepo.AssertNotCalled(t, "DeleteDevice", mock.Anything, mock.Anything)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.DeleteDevice(context.Background(), userID, deviceID)
		requireAppError(t, err, domainerrors.ErrDeviceNotFound)
	})
}
