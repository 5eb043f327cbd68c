package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-user staging area of products before checkout.
// TotalAmount is derived and recomputed by Recalculate before every save.
type Cart struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	Items       []*CartItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CartItem is one line of a cart. Price is the unit price captured when the line was added.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Product   *Product  `json:"product,omitempty"` // Joined on read, never persisted.
}

// NewCart returns an empty cart for userID.
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		UserID: userID,
		Items:  []*CartItem{},
	}
}

// Recalculate sets TotalAmount to the sum of price times quantity.
func (c *Cart) Recalculate() {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.TotalAmount = total
}

// FindItem returns the line with the given id.
func (c *Cart) FindItem(itemID uuid.UUID) (*CartItem, bool) {
	for _, item := range c.Items {
		if item.ID == itemID {
			return item, true
		}
	}

	return nil, false
}

// FindProduct returns the line holding productID.
func (c *Cart) FindProduct(productID uuid.UUID) (*CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}

	return nil, false
}

// AddItem increases the quantity of an existing line for the product, refreshing its price,
// or appends a new line. It returns the affected line.
func (c *Cart) AddItem(productID uuid.UUID, quantity int, price float64) *CartItem {
	if item, ok := c.FindProduct(productID); ok {
		item.Quantity += quantity
		item.Price = price
		c.Recalculate()

		return item
	}

	item := &CartItem{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
	c.Items = append(c.Items, item)
	c.Recalculate()

	return item
}

// RemoveItem drops the line with itemID and reports whether it existed.
func (c *Cart) RemoveItem(itemID uuid.UUID) bool {
	for i, item := range c.Items {
		if item.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.Recalculate()

			return true
		}
	}

	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []*CartItem{}
	c.TotalAmount = 0
}
