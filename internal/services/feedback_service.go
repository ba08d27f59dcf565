// internal/services/feedback_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wooshcafe/woosh-backend/internal/models"
	"github.com/wooshcafe/woosh-backend/internal/store"
)

var ErrCustomerRequired = errors.New("customer name is required")

// AdviceUnavailable is the fixed sentinel stored when the analysis sub-call
// could not produce advice.
const AdviceUnavailable = "AI 分析暫時無法使用"

// sentimentPayload is the structure the analysis sub-call is asked to return.
type sentimentPayload struct {
	PositivePoints []string `json:"positive_points"`
	NegativePoints []string `json:"negative_points"`
	Advice         string   `json:"advice"`
}

// FeedbackService is the analyzer specialization of the generation pipeline:
// one structured sub-call, and the record commits no matter how that call
// ends. A review with no AI enrichment is still a useful artifact.
type FeedbackService struct {
	feedbacks *store.FeedbackList
	generator ContentGenerator
	inFlight  atomic.Bool
}

type CreateFeedbackRequest struct {
	Customer string `json:"customer" validate:"required"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func NewFeedbackService(feedbacks *store.FeedbackList, generator ContentGenerator) *FeedbackService {
	return &FeedbackService{
		feedbacks: feedbacks,
		generator: generator,
	}
}

// CreateFeedback validates the literal fields, runs the sentiment analysis
// when it can, and prepends the record. Analysis failures degrade to empty
// lists and the sentinel advice; only an invalid customer name stops the
// commit.
func (s *FeedbackService) CreateFeedback(ctx context.Context, req *CreateFeedbackRequest) (*models.FeedbackRecord, error) {
	if req.Customer == "" {
		return nil, ErrCustomerRequired
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrGenerationInFlight
	}
	defer s.inFlight.Store(false)

	record := models.FeedbackRecord{
		ID:        uuid.New().String(),
		Customer:  req.Customer,
		Rating:    clampRating(req.Rating),
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	// An empty comment has nothing to analyze; skip the call rather than
	// burn a request on it.
	if req.Comment != "" && s.generator.Configured() {
		var payload sentimentPayload
		err := s.generator.GenerateStructured(ctx, sentimentPrompt(req.Comment), &payload)
		if err != nil {
			logrus.WithError(err).WithField("customer", req.Customer).Warn("Feedback analysis unavailable")
			record.Advice = AdviceUnavailable
		} else {
			record.PositivePoints = payload.PositivePoints
			record.NegativePoints = payload.NegativePoints
			record.Advice = payload.Advice
			if record.Advice == "" && len(payload.PositivePoints) == 0 && len(payload.NegativePoints) == 0 {
				record.Advice = AdviceUnavailable
			}
		}
	}

	s.feedbacks.Prepend(record)
	return &record, nil
}

func (s *FeedbackService) ListFeedbacks() []models.FeedbackRecord {
	return s.feedbacks.List()
}

// SyncReviews imports a batch from the external review platform. The
// connector is simulated; the batch lands newest-first like manual entries.
func (s *FeedbackService) SyncReviews() []models.FeedbackRecord {
	now := time.Now()
	batch := []models.FeedbackRecord{
		{ID: uuid.New().String(), Customer: "Alice Wu", Rating: 5, Comment: "拿鐵順口，環境很放鬆，適合工作！", CreatedAt: now},
		{ID: uuid.New().String(), Customer: "Mark Chen", Rating: 4, Comment: "甜點好吃，但假日人有點多。", CreatedAt: now},
		{ID: uuid.New().String(), Customer: "Sophie Lin", Rating: 5, Comment: "店員服務態度超好，大推！", CreatedAt: now},
	}

	s.feedbacks.PrependBatch(batch)
	return batch
}

// clampRating defaults an unset rating to 5 and clamps the rest to [1,5].
func clampRating(rating int) int {
	if rating == 0 {
		return 5
	}
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

func sentimentPrompt(comment string) string {
	return fmt.Sprintf(
		`你是咖啡廳的營運顧問。請分析以下顧客評論，並以 JSON 回覆，格式為
{"positive_points": ["..."], "negative_points": ["..."], "advice": "..."}。
評論：%s`, comment)
}
