// internal/store/orders.go
package store

import (
	"errors"
	"sync"

	"github.com/wooshcafe/woosh-backend/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderQueue is the shared queue the manager revenue panel reads. Newest
// orders sit at index 0 so the panel shows the latest without re-sorting.
type OrderQueue struct {
	mtx    sync.Mutex
	orders []models.Order
}

func NewOrderQueue() *OrderQueue {
	return &OrderQueue{}
}

// Prepend inserts at the front of the queue.
func (q *OrderQueue) Prepend(order models.Order) {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	q.orders = append([]models.Order{order}, q.orders...)
}

func (q *OrderQueue) List() []models.Order {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	snapshot := make([]models.Order, len(q.orders))
	copy(snapshot, q.orders)
	return snapshot
}

func (q *OrderQueue) Len() int {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	return len(q.orders)
}

// PendingCount feeds the daily panel's "orders waiting at the counter" card.
func (q *OrderQueue) PendingCount() int {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	count := 0
	for _, o := range q.orders {
		if o.Status == models.OrderStatusPending {
			count++
		}
	}
	return count
}

// TotalRevenue sums order totals across the queue.
func (q *OrderQueue) TotalRevenue() float64 {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	var total float64
	for _, o := range q.orders {
		total += o.Total
	}
	return total
}

// UpdateStatus performs the manager-side status transition. Orders are
// otherwise immutable once placed.
func (q *OrderQueue) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	for i := range q.orders {
		if q.orders[i].ID == id {
			q.orders[i].Status = status
			return q.orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}
