// internal/models/feedback.go
package models

import "time"

// FeedbackRecord holds one customer review. The AI-derived fields are
// optional: absent means not yet analyzed or analysis failed, which is not an
// error state for the record itself.
type FeedbackRecord struct {
	ID             string    `json:"id"`
	Customer       string    `json:"customer"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
	PositivePoints []string  `json:"positive_points,omitempty"`
	NegativePoints []string  `json:"negative_points,omitempty"`
	Advice         string    `json:"advice,omitempty"`
}
