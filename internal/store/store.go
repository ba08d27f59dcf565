// internal/store/store.go

// Package store is the explicitly owned state container behind the dashboard.
// Every list the panels share (order queue, ideas, feedbacks, inventory,
// goals, posts) lives here with defined mutation entry points; nothing is
// persisted — state lasts for the lifetime of the process by design.
package store

import (
	"time"

	"github.com/wooshcafe/woosh-backend/internal/models"
)

// Store aggregates the per-panel stores so the router wires one value.
type Store struct {
	Cart      *CartStore
	Orders    *OrderQueue
	Ideas     *IdeaList
	Feedbacks *FeedbackList
	Inventory *InventoryStore
	Goals     *GoalList
	Posts     *PostList
}

// New returns a store seeded with the shop's demo data, mirroring what the
// dashboard ships with on first load.
func New() *Store {
	now := time.Now()

	return &Store{
		Cart:   NewCartStore(),
		Orders: NewOrderQueue(),
		Ideas: NewIdeaList(
			models.ProductIdea{ID: "idea-1", Name: "桂花釀拿鐵", Stage: models.IdeaStageTesting, Notes: "甜度需調整", CreatedAt: now},
			models.ProductIdea{ID: "idea-2", Name: "酪梨燻雞三明治", Stage: models.IdeaStageIdea, Notes: "尋找供應商中", CreatedAt: now},
			models.ProductIdea{ID: "idea-3", Name: "靜岡抹茶千層", Stage: models.IdeaStageLaunch, Notes: "大受好評", CreatedAt: now},
		),
		Feedbacks: NewFeedbackList(
			models.FeedbackRecord{ID: "fb-1", Customer: "陳小姐", Rating: 5, Comment: "咖啡很好喝，環境很舒適！", CreatedAt: now},
			models.FeedbackRecord{ID: "fb-2", Customer: "Jason", Rating: 4, Comment: "插座有點少，但Wifi很快。", CreatedAt: now},
			models.FeedbackRecord{ID: "fb-3", Customer: "林先生", Rating: 5, Comment: "店員服務親切，推推！", CreatedAt: now},
		),
		Inventory: NewInventoryStore(
			models.InventoryItem{ID: "1", Name: "燕麥拿鐵 (Oatside)", Quantity: 2, Unit: "瓶", Status: models.InventoryStatusCritical, LastUpdated: "2023-10-24"},
			models.InventoryItem{ID: "2", Name: "耶加雪菲 咖啡豆", Quantity: 0.5, Unit: "kg", Status: models.InventoryStatusWarning, LastUpdated: "2023-10-23"},
			models.InventoryItem{ID: "3", Name: "外帶紙杯 (12oz)", Quantity: 1, Unit: "條", Status: models.InventoryStatusCritical, LastUpdated: "2023-10-24"},
			models.InventoryItem{ID: "4", Name: "光泉鮮乳", Quantity: 12, Unit: "瓶", Status: models.InventoryStatusNormal, LastUpdated: "2023-10-24"},
			models.InventoryItem{ID: "5", Name: "義式濃縮配方豆", Quantity: 5, Unit: "kg", Status: models.InventoryStatusNormal, LastUpdated: "2023-10-20"},
		),
		Goals: NewGoalList(
			models.Goal{ID: "goal-1", Title: "年度營收目標", Current: 850, Target: 1200, Unit: "萬"},
			models.Goal{ID: "goal-2", Title: "會員成長數", Current: 1200, Target: 2000, Unit: "人"},
			models.Goal{ID: "goal-3", Title: "Google 評論數", Current: 480, Target: 600, Unit: "則"},
		),
		Posts: NewPostList(
			models.SocialPost{ID: "post-1", Content: "週末限定！草莓戚風蛋糕新上市 🍰", Date: "2023-10-23", Likes: 145, Shares: 20, Platform: models.SocialPlatformIG},
			models.SocialPost{ID: "post-2", Content: "雨天來杯熱拿鐵，第二杯半價。", Date: "2023-10-20", Likes: 89, Shares: 5, Platform: models.SocialPlatformFB},
		),
	}
}
