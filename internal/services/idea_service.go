// internal/services/idea_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wooshcafe/woosh-backend/internal/models"
	"github.com/wooshcafe/woosh-backend/internal/store"
)

var (
	ErrIdeaNameRequired   = errors.New("idea name is required")
	ErrGenerationInFlight = errors.New("a generation request is already in flight")
	ErrGenerationFailed   = errors.New("all generation sub-calls failed")
)

// IdeaService coordinates the two-stage generation pipeline behind "add a
// product idea": a recipe text sub-call and an illustration sub-call, issued
// concurrently. Each sub-call fails independently; the idea record is
// committed once both have settled, with whichever fields succeeded.
type IdeaService struct {
	ideas     *store.IdeaList
	generator ContentGenerator
	storage   *StorageService
	inFlight  atomic.Bool
}

type CreateIdeaRequest struct {
	Name  string `json:"name" validate:"required"`
	Notes string `json:"notes"`
}

type UpdateIdeaStageRequest struct {
	Stage models.IdeaStage `json:"stage" validate:"required"`
}

func NewIdeaService(ideas *store.IdeaList, generator ContentGenerator, storage *StorageService) *IdeaService {
	return &IdeaService{
		ideas:     ideas,
		generator: generator,
		storage:   storage,
	}
}

// CreateIdea validates, fans out the two sub-calls, waits for both to settle,
// and commits exactly one record. A missing credential aborts before any
// remote call; both sub-calls failing aborts with no record so the caller can
// keep its input and retry. One surviving sub-call is enough to commit.
func (s *IdeaService) CreateIdea(ctx context.Context, req *CreateIdeaRequest) (*models.ProductIdea, error) {
	if req.Name == "" {
		return nil, ErrIdeaNameRequired
	}

	// Exactly-once commit: reject re-invocation while a request is in
	// flight. This also makes stale completions impossible — no second
	// input can be opened until the first settles.
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrGenerationInFlight
	}
	defer s.inFlight.Store(false)

	if !s.generator.Configured() {
		return nil, ErrNotConfigured
	}

	var (
		wg        sync.WaitGroup
		recipe    string
		recipeErr error
		image     []byte
		imageErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		recipe, recipeErr = s.generator.GenerateText(ctx, recipePrompt(req.Name, req.Notes))
	}()
	go func() {
		defer wg.Done()
		image, imageErr = s.generator.GenerateImage(ctx, imagePrompt(req.Name))
	}()
	wg.Wait()

	if recipeErr != nil && imageErr != nil {
		logrus.WithFields(logrus.Fields{
			"idea":       req.Name,
			"recipe_err": recipeErr,
			"image_err":  imageErr,
		}).Warn("Idea generation aborted, no sub-call succeeded")
		return nil, ErrGenerationFailed
	}

	idea := models.ProductIdea{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Stage:     models.IdeaStageIdea,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	if recipeErr == nil {
		idea.Recipe = recipe
	} else {
		logrus.WithError(recipeErr).WithField("idea", req.Name).Warn("Recipe sub-call failed, field omitted")
	}

	if imageErr == nil {
		ref, err := s.storage.StoreGeneratedImage(image)
		if err != nil {
			logrus.WithError(err).WithField("idea", req.Name).Warn("Failed to store generated image, field omitted")
		} else {
			idea.ImageRef = ref
		}
	} else {
		logrus.WithError(imageErr).WithField("idea", req.Name).Warn("Image sub-call failed, field omitted")
	}

	s.ideas.Append(idea)
	return &idea, nil
}

func (s *IdeaService) ListIdeas() []models.ProductIdea {
	return s.ideas.List()
}

func (s *IdeaService) UpdateStage(id string, stage models.IdeaStage) (*models.ProductIdea, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("invalid idea stage %q", stage)
	}

	idea, err := s.ideas.UpdateStage(id, stage)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

func recipePrompt(name, notes string) string {
	return fmt.Sprintf(
		"你是咖啡廳的研發主廚。請為新品「%s」寫一份簡短的製作配方，包含材料與步驟。備註：%s",
		name, notes)
}

func imagePrompt(name string) string {
	return fmt.Sprintf(
		"A cozy cafe product photo of %s, warm lighting, wooden table, shallow depth of field", name)
}
