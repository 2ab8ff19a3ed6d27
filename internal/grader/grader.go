package grader

import (
	"context"
	"errors"
	"fmt"

	"github.com/practice-partner/backend/internal/domain/interview"
)

// Result is the structured verdict for one answer.
type Result struct {
	Verdict    interview.Verdict `json:"verdict"`
	Feedback   string            `json:"feedback"`
	Correction string            `json:"correction"`
}

// Grader grades a candidate's answer to a single interview question.
// Implementations may call an LLM, use heuristics, or return canned results (for tests).
type Grader interface {
	Grade(ctx context.Context, question, answer string) (Result, error)
}

// Summarizer writes the closing assessment for a finished interview.
type Summarizer interface {
	Summarize(ctx context.Context, role string, log []interview.AnswerRecord) (string, error)
}

var (
	// ErrNotConfigured means no credential is set for the grading service.
	ErrNotConfigured = errors.New("grading service not configured")

	// ErrMalformedResponse means the model answered but not with a usable object.
	ErrMalformedResponse = errors.New("malformed model response")
)

// GradeError is returned when a remote call fails so the caller can distinguish
// between "model returned a bad grade" and "model was unreachable."
type GradeError struct {
	Reason  string
	Wrapped error
}

func (e *GradeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("grading failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("grading failed: %s", e.Reason)
}

func (e *GradeError) Unwrap() error {
	return e.Wrapped
}
