// internal/models/order.go
package models

import "time"

// CartLine is one entry in the guest cart. Name is the merge key: adding the
// same item again bumps Quantity instead of appending a second line.
type CartLine struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Order is an immutable snapshot of a cart at checkout time. Only Status may
// change afterwards, through the manager-side status transitions.
type Order struct {
	ID        string      `json:"id"`
	Lines     []CartLine  `json:"lines"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	Status    OrderStatus `json:"status"`
}
