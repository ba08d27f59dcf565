// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyValidationInvalid = "validation.invalid"

	// Cart / orders
	KeyCartItemAdded    = "cart.item_added"
	KeyCartItemSkipped  = "cart.item_skipped"
	KeyCartEmpty        = "cart.empty"
	KeyOrderPlaced      = "order.placed"
	KeyOrderNotFound    = "order.not_found"
	KeyOrderStatusMoved = "order.status_updated"

	// Generation
	KeyGenerationNotConfigured = "generation.not_configured"
	KeyGenerationInFlight      = "generation.in_flight"
	KeyGenerationFailed        = "generation.failed"
	KeyIdeaCreated             = "idea.created"
	KeyIdeaNotFound            = "idea.not_found"

	// Feedback
	KeyFeedbackCreated = "feedback.created"
	KeyFeedbackSynced  = "feedback.synced"

	// Inventory
	KeyInventoryImported = "inventory.imported"
	KeyInventoryNotFound = "inventory.not_found"
	KeyRestockSubmitted  = "inventory.restock_submitted"
	KeyRestockInvalidQty = "inventory.restock_invalid_quantity"

	// Goals / social
	KeyGoalCreated   = "goal.created"
	KeyPostDrafted   = "post.drafted"
	KeyPostPublished = "post.published"
)
