// internal/models/idea.go
package models

import "time"

// ProductIdea is a card on the product-dev kanban. Recipe and ImageRef are
// filled by the generation pipeline when the corresponding sub-call succeeds;
// a card without either is still a valid record.
type ProductIdea struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stage     IdeaStage `json:"stage"`
	Notes     string    `json:"notes"`
	Recipe    string    `json:"recipe,omitempty"`
	ImageRef  string    `json:"image_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
