package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/practice-partner/backend/internal/domain/interview"
)

const (
	DefaultOpenAIURL   = "https://api.openai.com"
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultTimeout     = 30 * time.Second
)

// OpenAIClient grades answers and writes summaries by calling an
// OpenAI-compatible chat completions endpoint (OpenAI, Ollama, LM Studio,
// vLLM, etc.).
type OpenAIClient struct {
	url     string // e.g. "https://api.openai.com"
	model   string // e.g. "gpt-4o-mini"
	apiKey  string // empty for local servers that need no key
	timeout time.Duration
	client  *http.Client // reused across calls
}

var (
	_ Grader     = (*OpenAIClient)(nil)
	_ Summarizer = (*OpenAIClient)(nil)
)

// NewOpenAIClient creates a client for the given endpoint. Every call is
// bounded by timeout; zero means DefaultTimeout.
func NewOpenAIClient(url, model, apiKey string, timeout time.Duration) *OpenAIClient {
	if url == "" {
		url = DefaultOpenAIURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenAIClient{
		url:     strings.TrimRight(url, "/"),
		model:   model,
		apiKey:  apiKey,
		timeout: timeout,
		client: &http.Client{
			// Backstop only; the per-call context deadline fires first.
			Timeout: timeout + 5*time.Second,
		},
	}
}

// Grade sends one question/answer pair to the model. It makes exactly one
// attempt.
func (c *OpenAIClient) Grade(ctx context.Context, question, answer string) (Result, error) {
	text, err := c.callLLM(ctx, buildGradePrompt(question, answer), 0, 250)
	if err != nil {
		return Result{}, err
	}
	return ParseResult(text)
}

func (c *OpenAIClient) Summarize(ctx context.Context, role string, log []interview.AnswerRecord) (string, error) {
	text, err := c.callLLM(ctx, buildSummaryPrompt(role, log), 0.5, 150)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// callLLM sends a single request to the model and returns the raw text response.
func (c *OpenAIClient) callLLM(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqBody := llmRequest{
		Model: c.model,
		Messages: []llmMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &GradeError{Reason: "LLM request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &GradeError{Reason: fmt.Sprintf("LLM returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", &GradeError{Reason: "failed to decode LLM response", Wrapped: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}

	if llmResp.Error != nil {
		return "", &GradeError{Reason: "LLM error: " + llmResp.Error.Message}
	}

	if len(llmResp.Choices) == 0 {
		return "", &GradeError{Reason: "LLM returned no choices", Wrapped: ErrMalformedResponse}
	}

	content := llmResp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &GradeError{Reason: "LLM returned empty content", Wrapped: ErrMalformedResponse}
	}

	return content, nil
}
