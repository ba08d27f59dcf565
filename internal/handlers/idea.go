// internal/handlers/idea.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wooshcafe/woosh-backend/internal/i18n"
	"github.com/wooshcafe/woosh-backend/internal/services"
	"github.com/wooshcafe/woosh-backend/internal/store"
	"github.com/wooshcafe/woosh-backend/internal/utils"
)

type IdeaHandler struct {
	ideaService *services.IdeaService
}

func NewIdeaHandler(ideaService *services.IdeaService) *IdeaHandler {
	return &IdeaHandler{
		ideaService: ideaService,
	}
}

// GET /ideas
func (h *IdeaHandler) GetIdeas(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"ideas": h.ideaService.ListIdeas(),
	})
}

// POST /ideas
//
// Runs the generation pipeline. Error mapping follows the pipeline's
// contract: validation → 400, concurrent re-trigger → 409, missing
// credential → 503, all sub-calls failed → 502. In the non-2xx cases no
// record was created and the client keeps its input for retry.
func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	idea, err := h.ideaService.CreateIdea(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIdeaNameRequired):
			utils.BadRequestResponse(c, err.Error(), nil)
		case errors.Is(err, services.ErrGenerationInFlight):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyGenerationInFlight))
		case errors.Is(err, services.ErrNotConfigured):
			utils.ServiceUnavailableResponse(c, "")
		case errors.Is(err, services.ErrGenerationFailed):
			utils.BadGatewayResponse(c, "")
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyIdeaCreated),
		"idea":    idea,
	})
}

// PUT /ideas/:id/stage
func (h *IdeaHandler) UpdateStage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateIdeaStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	idea, err := h.ideaService.UpdateStage(c.Param("id"), req.Stage)
	if err != nil {
		if errors.Is(err, store.ErrIdeaNotFound) {
			utils.NotFoundResponse(c, "idea")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"idea": idea,
	})
}
