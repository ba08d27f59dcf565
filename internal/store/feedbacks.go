// internal/store/feedbacks.go
package store

import (
	"sync"

	"github.com/wooshcafe/woosh-backend/internal/models"
)

// FeedbackList keeps reviews newest-first, same ordering convention as the
// order queue.
type FeedbackList struct {
	mtx     sync.Mutex
	records []models.FeedbackRecord
}

func NewFeedbackList(seed ...models.FeedbackRecord) *FeedbackList {
	l := &FeedbackList{}
	l.records = append(l.records, seed...)
	return l
}

func (l *FeedbackList) Prepend(record models.FeedbackRecord) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.records = append([]models.FeedbackRecord{record}, l.records...)
}

// PrependBatch inserts a batch at the front, preserving the batch's own
// order. Used by the review sync.
func (l *FeedbackList) PrependBatch(batch []models.FeedbackRecord) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.records = append(append([]models.FeedbackRecord{}, batch...), l.records...)
}

func (l *FeedbackList) List() []models.FeedbackRecord {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	snapshot := make([]models.FeedbackRecord, len(l.records))
	copy(snapshot, l.records)
	return snapshot
}

func (l *FeedbackList) Len() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return len(l.records)
}
