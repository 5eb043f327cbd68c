// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the fixed product category set of the shop.
type Category string

const (
	CategoryTops        Category = "상의"
	CategoryBottoms     Category = "하의"
	CategoryAccessories Category = "악세서리"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryTops, CategoryBottoms, CategoryAccessories}

// IsValid checks if the Category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryTops, CategoryBottoms, CategoryAccessories:
		return true
	default:
		return false
	}
}

// Product is a catalog entry. Stock is checked by the cart and decremented at checkout.
type Product struct {
	ID          uuid.UUID `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NormalizeSKU upper-cases and trims a SKU; SKUs are stored in this form.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// HasStock reports whether quantity units can be taken from the product.
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}
