package grader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/practice-partner/backend/internal/domain/interview"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// contentGenerator is the subset of *genai.Models the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient grades and summarizes through the Google GenAI API.
type GeminiClient struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

var (
	_ Grader     = (*GeminiClient)(nil)
	_ Summarizer = (*GeminiClient)(nil)
)

// NewGeminiClient creates a client for the Gemini API backend.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newGeminiClient(client.Models, model, timeout), nil
}

func newGeminiClient(models contentGenerator, model string, timeout time.Duration) *GeminiClient {
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultGeminiModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &GeminiClient{models: models, model: model, timeout: timeout}
}

func (c *GeminiClient) Grade(ctx context.Context, question, answer string) (Result, error) {
	text, err := c.generate(ctx, buildGradePrompt(question, answer), 0)
	if err != nil {
		return Result{}, err
	}
	return ParseResult(text)
}

func (c *GeminiClient) Summarize(ctx context.Context, role string, log []interview.AnswerRecord) (string, error) {
	return c.generate(ctx, buildSummaryPrompt(role, log), 0.5)
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{Temperature: &temperature}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", &GradeError{Reason: "gemini request failed", Wrapped: err}
	}
	if resp == nil {
		return "", &GradeError{Reason: "gemini returned no response", Wrapped: ErrMalformedResponse}
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", &GradeError{Reason: "gemini returned empty response", Wrapped: ErrMalformedResponse}
	}
	return output, nil
}
