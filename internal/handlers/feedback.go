// internal/handlers/feedback.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wooshcafe/woosh-backend/internal/i18n"
	"github.com/wooshcafe/woosh-backend/internal/services"
	"github.com/wooshcafe/woosh-backend/internal/utils"
)

type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// GET /feedbacks
func (h *FeedbackHandler) GetFeedbacks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	feedbacks := h.feedbackService.ListFeedbacks()
	page, total := utils.PaginateSlice(feedbacks, params)

	result := utils.CreatePaginationResult(page, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /feedbacks
//
// The analyzer always commits once the customer name validates: analysis
// failures degrade to a record without enrichment, never to an error.
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	record, err := h.feedbackService.CreateFeedback(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerRequired):
			utils.BadRequestResponse(c, err.Error(), nil)
		case errors.Is(err, services.ErrGenerationInFlight):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyGenerationInFlight))
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyFeedbackCreated),
		"feedback": record,
	})
}

// POST /feedbacks/sync
func (h *FeedbackHandler) SyncReviews(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	batch := h.feedbackService.SyncReviews()

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyFeedbackSynced),
		"imported": len(batch),
		"reviews":  batch,
	})
}
