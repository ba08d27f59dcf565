// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wooshcafe/woosh-backend/internal/models"
	"github.com/wooshcafe/woosh-backend/internal/store"
)

func price(v float64) *float64 { return &v }

func newOrderService() *OrderService {
	return NewOrderService(store.NewCartStore(), store.NewOrderQueue())
}

func TestAddToCartRequiresName(t *testing.T) {
	svc := newOrderService()

	_, err := svc.AddToCart(&AddCartItemRequest{UnitPrice: price(120)})
	assert.ErrorIs(t, err, ErrItemNameRequired)
}

func TestAddToCartSkipsUnpricedItems(t *testing.T) {
	svc := newOrderService()

	added, err := svc.AddToCart(&AddCartItemRequest{Name: "時價甜點"})
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, svc.CartLines())

	added, err = svc.AddToCart(&AddCartItemRequest{Name: "折扣券", UnitPrice: price(-10)})
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, svc.CartLines())
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := newOrderService()

	_, err := svc.Checkout()
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, svc.ListOrders())
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	svc := newOrderService()

	for i := 0; i < 2; i++ {
		added, err := svc.AddToCart(&AddCartItemRequest{Name: "拿鐵", UnitPrice: price(120)})
		require.NoError(t, err)
		require.True(t, added)
	}
	_, err := svc.AddToCart(&AddCartItemRequest{Name: "可頌", UnitPrice: price(80)})
	require.NoError(t, err)

	order, err := svc.Checkout()
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 320.0, order.Total)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, 2, order.Lines[0].Quantity)

	// Cart cleared, order on top of the queue
	assert.Empty(t, svc.CartLines())
	assert.Equal(t, 0.0, svc.CartTotal())

	orders := svc.ListOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCheckoutPrependsNewest(t *testing.T) {
	svc := newOrderService()

	_, err := svc.AddToCart(&AddCartItemRequest{Name: "拿鐵", UnitPrice: price(120)})
	require.NoError(t, err)
	first, err := svc.Checkout()
	require.NoError(t, err)

	_, err = svc.AddToCart(&AddCartItemRequest{Name: "可頌", UnitPrice: price(80)})
	require.NoError(t, err)
	second, err := svc.Checkout()
	require.NoError(t, err)

	orders := svc.ListOrders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc := newOrderService()

	_, err := svc.AddToCart(&AddCartItemRequest{Name: "拿鐵", UnitPrice: price(120)})
	require.NoError(t, err)
	order, err := svc.Checkout()
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(order.ID, models.OrderStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, updated.Status)

	_, err = svc.UpdateOrderStatus("missing", models.OrderStatusPaid)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}
