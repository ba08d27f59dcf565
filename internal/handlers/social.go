// internal/handlers/social.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wooshcafe/woosh-backend/internal/i18n"
	"github.com/wooshcafe/woosh-backend/internal/models"
	"github.com/wooshcafe/woosh-backend/internal/services"
	"github.com/wooshcafe/woosh-backend/internal/utils"
)

type SocialHandler struct {
	socialService *services.SocialService
}

type publishPostRequest struct {
	Content  string                `json:"content" binding:"required"`
	Platform models.SocialPlatform `json:"platform"`
}

func NewSocialHandler(socialService *services.SocialService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

// GET /posts
func (h *SocialHandler) GetPosts(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"posts": h.socialService.ListPosts(),
	})
}

// POST /posts
func (h *SocialHandler) PublishPost(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req publishPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if req.Platform == "" {
		req.Platform = models.SocialPlatformIG
	}

	post := h.socialService.Publish(req.Content, req.Platform)

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPostPublished),
		"post":    post,
	})
}

// POST /posts/draft
//
// Drafting never commits a post; the copy goes back to the editor for review.
func (h *SocialHandler) DraftPost(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.DraftPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	draft, err := h.socialService.DraftPost(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			utils.ServiceUnavailableResponse(c, "")
			return
		}
		utils.BadGatewayResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPostDrafted),
		"draft":   draft,
	})
}
