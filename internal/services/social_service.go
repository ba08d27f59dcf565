// internal/services/social_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wooshcafe/woosh-backend/internal/models"
	"github.com/wooshcafe/woosh-backend/internal/store"
)

// SocialService backs the social panel: the post list and the AI copy
// drafting behind the "polish my idea" button.
type SocialService struct {
	posts     *store.PostList
	generator ContentGenerator
}

type DraftPostRequest struct {
	Idea string `json:"idea" validate:"required"`
}

func NewSocialService(posts *store.PostList, generator ContentGenerator) *SocialService {
	return &SocialService{
		posts:     posts,
		generator: generator,
	}
}

func (s *SocialService) ListPosts() []models.SocialPost {
	return s.posts.List()
}

// DraftPost turns a rough campaign idea into post copy. Unlike the idea
// pipeline there is a single sub-call, so its failure is the operation's
// failure; nothing is committed either way — the draft goes back to the
// editor.
func (s *SocialService) DraftPost(ctx context.Context, req *DraftPostRequest) (string, error) {
	if req.Idea == "" {
		return "", fmt.Errorf("draft idea is required")
	}

	if !s.generator.Configured() {
		return "", ErrNotConfigured
	}

	return s.generator.GenerateText(ctx, draftPrompt(req.Idea))
}

// Publish records a finished post on the list. Engagement numbers arrive
// later from the platforms; they start at zero.
func (s *SocialService) Publish(content string, platform models.SocialPlatform) models.SocialPost {
	post := models.SocialPost{
		ID:       uuid.New().String(),
		Content:  content,
		Date:     time.Now().Format("2006-01-02"),
		Platform: platform,
	}

	s.posts.Prepend(post)
	return post
}

func draftPrompt(idea string) string {
	return fmt.Sprintf(
		"你是咖啡廳的社群小編。請把以下活動想法潤飾成一則親切、簡短的社群貼文，加入適量表情符號：%s", idea)
}
