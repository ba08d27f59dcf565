// internal/store/goals.go
package store

import (
	"sync"

	"github.com/wooshcafe/woosh-backend/internal/models"
)

type GoalList struct {
	mtx   sync.Mutex
	goals []models.Goal
}

func NewGoalList(seed ...models.Goal) *GoalList {
	l := &GoalList{}
	l.goals = append(l.goals, seed...)
	return l
}

func (l *GoalList) Append(goal models.Goal) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.goals = append(l.goals, goal)
}

func (l *GoalList) List() []models.Goal {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	snapshot := make([]models.Goal, len(l.goals))
	copy(snapshot, l.goals)
	return snapshot
}
