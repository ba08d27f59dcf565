// internal/services/order_service.go
package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wooshcafe/woosh-backend/internal/models"
	"github.com/wooshcafe/woosh-backend/internal/store"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrItemNameRequired = errors.New("item name is required")
)

// OrderService owns the guest ordering workflow: cart mutation and the
// checkout pipeline that turns the cart into an order on the shared queue.
type OrderService struct {
	cart   *store.CartStore
	orders *store.OrderQueue
}

type AddCartItemRequest struct {
	Name string `json:"name" validate:"required"`
	// Pointer so "contact the counter" items (no numeric price) are
	// distinguishable from a zero price.
	UnitPrice *float64 `json:"unit_price"`
}

func NewOrderService(cart *store.CartStore, orders *store.OrderQueue) *OrderService {
	return &OrderService{
		cart:   cart,
		orders: orders,
	}
}

// AddToCart merges the item into the cart. Items without a numeric price are
// not orderable and are skipped silently; the return value reports whether
// the cart changed.
func (s *OrderService) AddToCart(req *AddCartItemRequest) (bool, error) {
	if req.Name == "" {
		return false, ErrItemNameRequired
	}

	if req.UnitPrice == nil || *req.UnitPrice < 0 {
		return false, nil
	}

	s.cart.AddItem(req.Name, *req.UnitPrice)
	return true, nil
}

func (s *OrderService) RemoveFromCart(name string) {
	s.cart.RemoveItem(name)
}

func (s *OrderService) CartLines() []models.CartLine {
	return s.cart.Lines()
}

func (s *OrderService) CartTotal() float64 {
	return s.cart.Total()
}

// Checkout snapshots the cart into a new pending order, prepends it to the
// queue, and clears the cart. It is synchronous and touches no remote
// resource; the only failure mode is an empty cart.
func (s *OrderService) Checkout() (*models.Order, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}

	order := models.Order{
		ID:        uuid.New().String(),
		Lines:     lines,
		Total:     total,
		CreatedAt: time.Now(),
		Status:    models.OrderStatusPending,
	}

	s.orders.Prepend(order)
	s.cart.Clear()

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"lines":    len(order.Lines),
		"total":    order.Total,
	}).Info("Order placed")

	return &order, nil
}

func (s *OrderService) ListOrders() []models.Order {
	return s.orders.List()
}

// UpdateOrderStatus is the manager-side transition (pending → paid →
// completed at the counter).
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
