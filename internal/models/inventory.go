// internal/models/inventory.go
package models

type InventoryItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Quantity    float64         `json:"quantity"`
	Unit        string          `json:"unit"`
	Status      InventoryStatus `json:"status"`
	LastUpdated string          `json:"last_updated"`
}

// RestockSuggestion mirrors the dashboard's per-status reorder hint.
func (i InventoryItem) RestockSuggestion() int {
	switch i.Status {
	case InventoryStatusCritical:
		return 10
	case InventoryStatusWarning:
		return 5
	}
	return 0
}
