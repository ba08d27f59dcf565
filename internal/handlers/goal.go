// internal/handlers/goal.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wooshcafe/woosh-backend/internal/i18n"
	"github.com/wooshcafe/woosh-backend/internal/services"
	"github.com/wooshcafe/woosh-backend/internal/utils"
)

type GoalHandler struct {
	goalService *services.GoalService
}

func NewGoalHandler(goalService *services.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// GET /goals
func (h *GoalHandler) GetGoals(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"goals": h.goalService.ListGoals(),
	})
}

// POST /goals
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	goal := h.goalService.CreateGoal(&req)

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyGoalCreated),
		"goal":    goal,
	})
}
