// internal/services/dashboard_service_test.go
package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wooshcafe/woosh-backend/internal/models"
	"github.com/wooshcafe/woosh-backend/internal/store"
)

func TestDashboardSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather":{"temperature":21,"weathercode":2}}`))
	}))
	defer srv.Close()

	orders := store.NewOrderQueue()
	orders.Prepend(models.Order{ID: "a", Total: 300, Status: models.OrderStatusPending})
	orders.Prepend(models.Order{ID: "b", Total: 200, Status: models.OrderStatusPaid})

	inventory := store.NewInventoryStore(
		models.InventoryItem{ID: "1", Name: "燕麥奶", Status: models.InventoryStatusCritical},
		models.InventoryItem{ID: "2", Name: "咖啡豆", Status: models.InventoryStatusWarning},
		models.InventoryItem{ID: "3", Name: "鮮乳", Status: models.InventoryStatusNormal},
	)
	goals := store.NewGoalList(models.Goal{ID: "g1", Title: "年度營收目標", Current: 850, Target: 1200, Unit: "萬"})

	svc := NewDashboardService(weatherServiceFor(srv.URL), orders, inventory, goals)
	summary := svc.Summary(context.Background())

	assert.Equal(t, 21.0, summary.Weather.Temperature)
	assert.Equal(t, "多雲時晴", summary.Weather.Description)
	assert.Equal(t, 1, summary.PendingOrders)
	assert.Equal(t, 28950.0, summary.TotalRevenue)
	require.Len(t, summary.CriticalInventory, 1)
	assert.Equal(t, "燕麥奶", summary.CriticalInventory[0].Name)
	require.Len(t, summary.WarningInventory, 1)
	assert.Len(t, summary.Goals, 1)
	assert.NotEmpty(t, summary.Quote)
	assert.NotEmpty(t, summary.Date)
}

func TestQuoteOfDayStableWithinDay(t *testing.T) {
	day := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	morning := quoteOfDay(day)
	evening := quoteOfDay(day.Add(10 * time.Hour))
	assert.Equal(t, morning, evening)
	assert.Contains(t, encouragingQuotes, morning)

	nextDay := quoteOfDay(day.AddDate(0, 0, 1))
	assert.NotEqual(t, morning, nextDay)
}
