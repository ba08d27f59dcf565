// internal/store/ideas.go
package store

import (
	"errors"
	"sync"

	"github.com/wooshcafe/woosh-backend/internal/models"
)

var ErrIdeaNotFound = errors.New("idea not found")

// IdeaList backs the product-dev kanban. Cards are appended in creation
// order; the kanban columns group by stage on read.
type IdeaList struct {
	mtx   sync.Mutex
	ideas []models.ProductIdea
}

func NewIdeaList(seed ...models.ProductIdea) *IdeaList {
	l := &IdeaList{}
	l.ideas = append(l.ideas, seed...)
	return l
}

func (l *IdeaList) Append(idea models.ProductIdea) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.ideas = append(l.ideas, idea)
}

func (l *IdeaList) List() []models.ProductIdea {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	snapshot := make([]models.ProductIdea, len(l.ideas))
	copy(snapshot, l.ideas)
	return snapshot
}

func (l *IdeaList) Len() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return len(l.ideas)
}

// UpdateStage moves a card between kanban columns.
func (l *IdeaList) UpdateStage(id string, stage models.IdeaStage) (models.ProductIdea, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	for i := range l.ideas {
		if l.ideas[i].ID == id {
			l.ideas[i].Stage = stage
			return l.ideas[i], nil
		}
	}
	return models.ProductIdea{}, ErrIdeaNotFound
}
