// internal/store/inventory.go
package store

import (
	"errors"
	"sync"

	"github.com/wooshcafe/woosh-backend/internal/models"
)

var ErrInventoryItemNotFound = errors.New("inventory item not found")

type InventoryStore struct {
	mtx   sync.Mutex
	items []models.InventoryItem
}

func NewInventoryStore(seed ...models.InventoryItem) *InventoryStore {
	s := &InventoryStore{}
	s.items = append(s.items, seed...)
	return s
}

func (s *InventoryStore) List() []models.InventoryItem {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	snapshot := make([]models.InventoryItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *InventoryStore) Get(id string) (models.InventoryItem, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrInventoryItemNotFound
}

// AppendBatch adds imported rows to the existing list, matching the
// dashboard's CSV import behaviour.
func (s *InventoryStore) AppendBatch(items []models.InventoryItem) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.items = append(s.items, items...)
}

// ByStatus filters for the daily panel's alert cards.
func (s *InventoryStore) ByStatus(status models.InventoryStatus) []models.InventoryItem {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var out []models.InventoryItem
	for _, item := range s.items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}
