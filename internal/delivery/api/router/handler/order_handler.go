package handler

import (
	"net/http"
	"strconv"
	"time"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves checkout and order management.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// OrderItemRequest is one line of a checkout. Legacy clients send the product id as _id.
type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	LegacyID  string  `json:"_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

// ShippingAddressRequest is the delivery address of a checkout.
type ShippingAddressRequest struct {
	PostalCode    string `json:"postalCode"`
	Address       string `json:"address"`
	AddressDetail string `json:"addressDetail"`
}

// CreateOrderRequest is the body of POST /api/orders. Field validation happens in the use case
// so that empty item lists and bad payment values map to their own error codes.
type CreateOrderRequest struct {
	Items           []OrderItemRequest     `json:"items"`
	Products        []OrderItemRequest     `json:"products"`
	RecipientName   string                 `json:"recipientName"`
	RecipientPhone  string                 `json:"recipientPhone"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentStatus   string                 `json:"paymentStatus"`
	Discount        float64                `json:"discount"`
	MerchantUID     string                 `json:"merchant_uid"`
	ImpUID          string                 `json:"imp_uid"`
	Memo            string                 `json:"memo"`
}

// UpdateOrderRequest is the body of PUT /api/orders/:id.
type UpdateOrderRequest struct {
	OrderStatus    *string    `json:"orderStatus"`
	TrackingNumber *string    `json:"trackingNumber"`
	ShippedAt      *time.Time `json:"shippedAt"`
	DeliveredAt    *time.Time `json:"deliveredAt"`
	PaymentStatus  *string    `json:"paymentStatus"`
	PaidAt         *time.Time `json:"paidAt"`
	Memo           *string    `json:"memo"`
}

func toOrderItemInputs(items []OrderItemRequest) []usecase.OrderItemInput {
	if items == nil {
		return nil
	}

	inputs := make([]usecase.OrderItemInput, 0, len(items))
	for _, item := range items {
		productID := item.ProductID
		if productID == "" {
			productID = item.LegacyID
		}

		inputs = append(inputs, usecase.OrderItemInput{
			ProductID: productID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	return inputs
}

// CreateOrder places an order for the caller.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), actor, &usecase.CreateOrderInput{
		Items:          toOrderItemInputs(req.Items),
		Products:       toOrderItemInputs(req.Products),
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		ShippingAddress: entity.ShippingAddress{
			PostalCode:    req.ShippingAddress.PostalCode,
			Address:       req.ShippingAddress.Address,
			AddressDetail: req.ShippingAddress.AddressDetail,
		},
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		Discount:      req.Discount,
		MerchantUID:   req.MerchantUID,
		ImpUID:        req.ImpUID,
		Memo:          req.Memo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "주문이 완료되었습니다")
}

// ListOrders returns the caller's orders, or any orders for admins.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.orderUC.ListOrders(c.Request().Context(), actor, &usecase.ListOrdersInput{
		Page:   page,
		Limit:  limit,
		Status: c.QueryParam("status"),
		UserID: c.QueryParam("userId"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, output.Orders, output.Pagination)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), actor, id, &usecase.UpdateOrderInput{
		OrderStatus:    req.OrderStatus,
		TrackingNumber: req.TrackingNumber,
		ShippedAt:      req.ShippedAt,
		DeliveredAt:    req.DeliveredAt,
		PaymentStatus:  req.PaymentStatus,
		PaidAt:         req.PaidAt,
		Memo:           req.Memo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "주문이 수정되었습니다")
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "주문이 삭제되었습니다")
}

// GetReceiptQR renders the order receipt QR code as a PNG.
func (h *OrderHandler) GetReceiptQR(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.orderUC.GetOrderReceiptQR(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
