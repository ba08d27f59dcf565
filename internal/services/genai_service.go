// internal/services/genai_service.go
package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/wooshcafe/woosh-backend/internal/config"
)

// ErrNotConfigured is returned when no API credential is present. Callers
// must surface it as a configuration notice before any network call happens.
var ErrNotConfigured = errors.New("generation service is not configured")

// ContentGenerator is the capability the coordinators depend on. Tests swap
// in a stub; production wires GenAIService.
type ContentGenerator interface {
	Configured() bool
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
	GenerateStructured(ctx context.Context, prompt string, out interface{}) error
}

// GenAIService talks to the Gemini API: langchaingo for text and structured
// output, a direct REST call for image generation (not exposed by
// langchaingo). Without an API key the service exists but every call returns
// ErrNotConfigured, same pattern as the storage service.
type GenAIService struct {
	llm        llms.Model
	httpClient *http.Client
	baseURL    string
	config     *config.Config
}

func NewGenAIService(cfg *config.Config) (*GenAIService, error) {
	svc := &GenAIService{
		httpClient: &http.Client{},
		baseURL:    "https://generativelanguage.googleapis.com",
		config:     cfg,
	}

	if cfg.AI.APIKey == "" {
		// Unconfigured service for local development
		return svc, nil
	}

	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(cfg.AI.APIKey),
		googleai.WithDefaultModel(cfg.AI.TextModel),
	)
	if err != nil {
		// Degrade to the unconfigured short-circuit rather than taking the
		// whole dashboard down with the AI panel.
		return svc, fmt.Errorf("failed to create genai client: %w", err)
	}

	svc.llm = llm
	return svc, nil
}

func (s *GenAIService) Configured() bool {
	return s.llm != nil
}

func (s *GenAIService) requestTimeout() time.Duration {
	return time.Duration(s.config.AI.RequestTimeout) * time.Second
}

func (s *GenAIService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.llm == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout())
	defer cancel()

	completion, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("text generation failed: %w", err)
	}

	return strings.TrimSpace(completion), nil
}

// GenerateStructured requests JSON output and unmarshals it into out. A
// response that cannot be parsed is an error; the caller decides how to
// degrade.
func (s *GenAIService) GenerateStructured(ctx context.Context, prompt string, out interface{}) error {
	if s.llm == nil {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout())
	defer cancel()

	completion, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt, llms.WithJSONMode())
	if err != nil {
		return fmt.Errorf("structured generation failed: %w", err)
	}

	if err := json.Unmarshal([]byte(stripCodeFence(completion)), out); err != nil {
		return fmt.Errorf("malformed structured response: %w", err)
	}

	return nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models add even in
// JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

type generateContentRequest struct {
	Contents         []generateContent     `json:"contents"`
	GenerationConfig generateContentConfig `json:"generationConfig"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *generateInline `json:"inlineData,omitempty"`
}

type generateInline struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateContentConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// GenerateImage asks the image model for an illustrative picture and returns
// the raw bytes of the first inline image in the response.
func (s *GenAIService) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if s.config.AI.APIKey == "" {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout())
	defer cancel()

	reqBody := generateContentRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
		GenerationConfig: generateContentConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		s.baseURL, s.config.AI.ImageModel, s.config.AI.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image generation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image generation returned status %d", resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("malformed image response: %w", err)
	}

	for _, candidate := range parsed.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("failed to decode image data: %w", err)
			}
			return data, nil
		}
	}

	return nil, errors.New("image generation returned no image")
}
