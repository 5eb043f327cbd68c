package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler serves the caller's cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

// AddCartItemRequest is the body of POST /api/cart/items. A client price is ignored.
type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// UpdateCartItemRequest is the body of PUT /api/cart/items/:itemId.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), actor.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

func (h *CartHandler) AddItem(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req AddCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return domainerrors.ErrInvalidID.WithDetails("productId")
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), actor.UserID, productID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cart, "장바구니에 추가되었습니다")
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	itemID, err := paramUUID(c, "itemId")
	if err != nil {
		return err
	}

	var req UpdateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.UpdateItem(c.Request().Context(), actor.UserID, itemID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	itemID, err := paramUUID(c, "itemId")
	if err != nil {
		return err
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), actor.UserID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.ClearCart(c.Request().Context(), actor.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "장바구니를 비웠습니다")
}
