// internal/store/cart.go
package store

import (
	"sync"

	"github.com/wooshcafe/woosh-backend/internal/models"
)

// CartStore holds the line items of the active guest session. Lines keep
// insertion order for the receipt; at most one line exists per item name.
type CartStore struct {
	mtx   sync.Mutex
	lines []models.CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddItem merges by name: an existing line gets quantity+1, otherwise a new
// line with quantity 1 is appended.
func (s *CartStore) AddItem(name string, unitPrice float64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.lines {
		if s.lines[i].Name == name {
			s.lines[i].Quantity++
			return
		}
	}

	s.lines = append(s.lines, models.CartLine{
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// RemoveItem decrements the named line and drops it at quantity zero.
// Unknown names are a no-op.
func (s *CartStore) RemoveItem(name string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.lines {
		if s.lines[i].Name != name {
			continue
		}
		s.lines[i].Quantity--
		if s.lines[i].Quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		}
		return
	}
}

// Total is recomputed on every read so it can never go stale against a
// concurrent mutation.
func (s *CartStore) Total() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var total float64
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

// Lines returns a snapshot copy; callers never see later mutations.
func (s *CartStore) Lines() []models.CartLine {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	snapshot := make([]models.CartLine, len(s.lines))
	copy(snapshot, s.lines)
	return snapshot
}

func (s *CartStore) Len() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.lines)
}

func (s *CartStore) Clear() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.lines = nil
}
