package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem_Totals(t *testing.T) {
	t.Parallel()

	cart := NewCart(uuid.New())
	productA := uuid.New()
	productB := uuid.New()

	cart.AddItem(productA, 2, 10000)
	cart.AddItem(productB, 1, 5000)

	assert.Len(t, cart.Items, 2)
	assert.InDelta(t, 25000, cart.TotalAmount, 0.0001)
}

func TestCart_AddItem_MergesSameProductAndRefreshesPrice(t *testing.T) {
	t.Parallel()

	cart := NewCart(uuid.New())
	product := uuid.New()

	first := cart.AddItem(product, 1, 10000)
	second := cart.AddItem(product, 2, 12000)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Quantity)
	assert.InDelta(t, 36000, cart.TotalAmount, 0.0001)
}

func TestCart_RemoveItem_OnlyItemLeavesEmptyCart(t *testing.T) {
	t.Parallel()

	cart := NewCart(uuid.New())
	item := cart.AddItem(uuid.New(), 3, 7000)

	assert.True(t, cart.RemoveItem(item.ID))
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalAmount)

	assert.False(t, cart.RemoveItem(item.ID))
}

func TestCart_Clear(t *testing.T) {
	t.Parallel()

	cart := NewCart(uuid.New())
	cart.AddItem(uuid.New(), 1, 1000)
	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalAmount)
}

func TestNewPagination(t *testing.T) {
	t.Parallel()

	p := NewPagination(2, 10, 25)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)

	p = NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

func TestClampPage(t *testing.T) {
	t.Parallel()

	page, limit := ClampPage(0, 0, MaxPageLimit)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageLimit, limit)

	page, limit = ClampPage(3, 500, MaxPageLimit)
	assert.Equal(t, 3, page)
	assert.Equal(t, MaxPageLimit, limit)
	assert.Equal(t, 200, Offset(page, limit))
}
