// internal/services/goal_service.go
package services

import (
	"github.com/google/uuid"

	"github.com/wooshcafe/woosh-backend/internal/models"
	"github.com/wooshcafe/woosh-backend/internal/store"
)

type GoalService struct {
	goals *store.GoalList
}

type CreateGoalRequest struct {
	Title   string  `json:"title" validate:"required"`
	Target  float64 `json:"target" validate:"required,gt=0"`
	Current float64 `json:"current" validate:"gte=0"`
	Unit    string  `json:"unit"`
}

func NewGoalService(goals *store.GoalList) *GoalService {
	return &GoalService{
		goals: goals,
	}
}

func (s *GoalService) ListGoals() []models.Goal {
	return s.goals.List()
}

func (s *GoalService) CreateGoal(req *CreateGoalRequest) models.Goal {
	goal := models.Goal{
		ID:      uuid.New().String(),
		Title:   req.Title,
		Current: req.Current,
		Target:  req.Target,
		Unit:    req.Unit,
	}

	s.goals.Append(goal)
	return goal
}
