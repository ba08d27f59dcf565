// internal/services/dashboard_service.go
package services

import (
	"context"
	"time"

	"github.com/wooshcafe/woosh-backend/internal/models"
	"github.com/wooshcafe/woosh-backend/internal/store"
)

// revenueBaseline is the shop's booked revenue before the dashboard went
// live; live orders add on top of it.
const revenueBaseline = 28450

var encouragingQuotes = []string{
	"每一杯咖啡都是一次溫暖的傳遞。",
	"今天也是讓客人帶著笑容離開的一天！",
	"辛苦了！你的用心，客人都喝得出來。",
	"慢下來，品味經營的苦與甜。",
	"保持熱情，好事正在發生。",
	"今天的努力，是未來豐收的養分。",
}

// DashboardSummary is the daily panel payload: greeting material, weather,
// and the action items computed from the live stores.
type DashboardSummary struct {
	Date              string                 `json:"date"`
	Quote             string                 `json:"quote"`
	Weather           WeatherReading         `json:"weather"`
	PendingOrders     int                    `json:"pending_orders"`
	TotalRevenue      float64                `json:"total_revenue"`
	CriticalInventory []models.InventoryItem `json:"critical_inventory"`
	WarningInventory  []models.InventoryItem `json:"warning_inventory"`
	Goals             []models.Goal          `json:"goals"`
}

type DashboardService struct {
	weather   *WeatherService
	orders    *store.OrderQueue
	inventory *store.InventoryStore
	goals     *store.GoalList
}

func NewDashboardService(weather *WeatherService, orders *store.OrderQueue, inventory *store.InventoryStore, goals *store.GoalList) *DashboardService {
	return &DashboardService{
		weather:   weather,
		orders:    orders,
		inventory: inventory,
		goals:     goals,
	}
}

// Summary assembles the daily panel. The weather lookup degrades to its
// default reading internally, so this never fails.
func (s *DashboardService) Summary(ctx context.Context) DashboardSummary {
	now := time.Now()

	return DashboardSummary{
		Date:              now.Format("2006-01-02"),
		Quote:             quoteOfDay(now),
		Weather:           s.weather.CurrentWeather(ctx),
		PendingOrders:     s.orders.PendingCount(),
		TotalRevenue:      revenueBaseline + s.orders.TotalRevenue(),
		CriticalInventory: s.inventory.ByStatus(models.InventoryStatusCritical),
		WarningInventory:  s.inventory.ByStatus(models.InventoryStatusWarning),
		Goals:             s.goals.List(),
	}
}

// quoteOfDay rotates through the list by day of month, so the quote is stable
// within a day and changes overnight.
func quoteOfDay(now time.Time) string {
	return encouragingQuotes[now.Day()%len(encouragingQuotes)]
}
