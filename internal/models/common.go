// internal/models/common.go
package models

// Enums
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCompleted:
		return true
	}
	return false
}

type IdeaStage string

const (
	IdeaStageIdea    IdeaStage = "idea"
	IdeaStageTesting IdeaStage = "testing"
	IdeaStageLaunch  IdeaStage = "launch"
)

func (s IdeaStage) Valid() bool {
	switch s {
	case IdeaStageIdea, IdeaStageTesting, IdeaStageLaunch:
		return true
	}
	return false
}

type InventoryStatus string

const (
	InventoryStatusNormal   InventoryStatus = "normal"
	InventoryStatusWarning  InventoryStatus = "warning"
	InventoryStatusCritical InventoryStatus = "critical"
)

type SocialPlatform string

const (
	SocialPlatformFB SocialPlatform = "FB"
	SocialPlatformIG SocialPlatform = "IG"
)
