// internal/services/inventory_service.go
package services

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/wooshcafe/woosh-backend/internal/models"
	"github.com/wooshcafe/woosh-backend/internal/store"
	"github.com/wooshcafe/woosh-backend/internal/utils"
)

var ErrRestockInvalidQuantity = errors.New("restock quantity must be positive")

// InventoryService backs the stock panel: the item list, restock orders and
// the CSV import/export round trip.
type InventoryService struct {
	inventory *store.InventoryStore
}

func NewInventoryService(inventory *store.InventoryStore) *InventoryService {
	return &InventoryService{
		inventory: inventory,
	}
}

func (s *InventoryService) ListItems() []models.InventoryItem {
	return s.inventory.List()
}

// SubmitRestock records a purchase order for the item. A zero quantity falls
// back to the per-status suggestion; there is no supplier integration, the
// acknowledgement is the whole transaction.
func (s *InventoryService) SubmitRestock(id string, quantity int) (models.InventoryItem, int, error) {
	item, err := s.inventory.Get(id)
	if err != nil {
		return models.InventoryItem{}, 0, err
	}

	if quantity == 0 {
		quantity = item.RestockSuggestion()
	}
	if quantity <= 0 {
		return models.InventoryItem{}, 0, ErrRestockInvalidQuantity
	}

	logrus.WithFields(logrus.Fields{
		"item_id":  item.ID,
		"item":     item.Name,
		"quantity": quantity,
	}).Info("Restock order submitted")

	return item, quantity, nil
}

func (s *InventoryService) ExportCSV() ([]byte, error) {
	return utils.InventoryToCSV(s.inventory.List())
}

// ImportCSV appends the parsed rows to the current list and reports how many
// were taken in.
func (s *InventoryService) ImportCSV(data []byte) (int, error) {
	items, err := utils.InventoryFromCSV(data)
	if err != nil {
		return 0, err
	}

	s.inventory.AppendBatch(items)

	logrus.WithField("count", len(items)).Info("Inventory rows imported")
	return len(items), nil
}
