package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC})
	actor := testCustomer()

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, actor.UserID, &usecase.DeviceInfo{
			PushToken: "fcm-token",
			DeviceID:  "device-1",
			Platform:  "ios",
		}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: actor.UserID}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/api/devices",
		body:   `{"token":"fcm-token","deviceId":"device-1","platform":"ios"}`,
		actor:  actor,
	})

	require.NoError(t, h.RegisterDevice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeviceHandler_DeleteDevice_NotOwned(t *testing.T) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC})
	actor := testCustomer()
	deviceID := uuid.New()

	deviceUC.EXPECT().DeleteDevice(mock.Anything, actor.UserID, deviceID).Return(domainerrors.ErrDeviceNotFound)

	c, _ := newTestContext(testRequest{
		method: http.MethodDelete,
		path:   "/api/devices/" + deviceID.String(),
		params: map[string]string{"id": deviceID.String()},
		actor:  actor,
	})

	assert.ErrorIs(t, h.DeleteDevice(c), domainerrors.ErrDeviceNotFound)
}
