package grader

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/practice-partner/backend/internal/domain/interview"
)

// FallbackObserver is told every time a remote call is replaced by a
// fallback. operation is "grade" or "summarize".
type FallbackObserver interface {
	ObserveFallback(operation, reason string)
}

// FallbackReason classifies err for logs and metrics.
func FallbackReason(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	default:
		return "unavailable"
	}
}

// FallbackGrader tries primary and substitutes the fallback result on any
// error. Grade never returns an error.
type FallbackGrader struct {
	primary  Grader
	fallback Grader
	logger   *slog.Logger
	observer FallbackObserver
}

var _ Grader = (*FallbackGrader)(nil)

// WithFallback wraps primary. observer may be nil.
func WithFallback(primary, fallback Grader, logger *slog.Logger, observer FallbackObserver) *FallbackGrader {
	return &FallbackGrader{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
		observer: observer,
	}
}

func (g *FallbackGrader) Grade(ctx context.Context, question, answer string) (Result, error) {
	res, err := g.primary.Grade(ctx, question, answer)
	if err == nil && res.Verdict.Valid() {
		return res, nil
	}
	if err == nil {
		err = &GradeError{Reason: "unknown verdict " + string(res.Verdict), Wrapped: ErrMalformedResponse}
	}

	reason := FallbackReason(err)
	g.logger.Warn("grading fell back to heuristic", "reason", reason, "error", err)
	if g.observer != nil {
		g.observer.ObserveFallback("grade", reason)
	}

	res, ferr := g.fallback.Grade(ctx, question, answer)
	if ferr != nil {
		// The fallback is expected to be infallible; never let that leak.
		g.logger.Error("fallback grader failed", "error", ferr)
		return heuristicResult(answer), nil
	}
	return res, nil
}

// FallbackSummarizer substitutes DefaultSummary on any error. Summarize never
// returns an error.
type FallbackSummarizer struct {
	primary  Summarizer
	logger   *slog.Logger
	observer FallbackObserver
}

var _ Summarizer = (*FallbackSummarizer)(nil)

func WithSummaryFallback(primary Summarizer, logger *slog.Logger, observer FallbackObserver) *FallbackSummarizer {
	return &FallbackSummarizer{primary: primary, logger: logger, observer: observer}
}

func (s *FallbackSummarizer) Summarize(ctx context.Context, role string, log []interview.AnswerRecord) (string, error) {
	summary, err := s.primary.Summarize(ctx, role, log)
	if err == nil && strings.TrimSpace(summary) != "" {
		return summary, nil
	}
	if err == nil {
		err = &GradeError{Reason: "empty summary", Wrapped: ErrMalformedResponse}
	}

	reason := FallbackReason(err)
	s.logger.Warn("summary fell back to default", "reason", reason, "error", err)
	if s.observer != nil {
		s.observer.ObserveFallback("summarize", reason)
	}
	return DefaultSummary, nil
}

// unconfigured stands in for a remote service when no credential is set, so
// the fallback path (and its logging and metrics) is taken on every call.
type unconfigured struct{}

func (unconfigured) Grade(context.Context, string, string) (Result, error) {
	return Result{}, ErrNotConfigured
}

func (unconfigured) Summarize(context.Context, string, []interview.AnswerRecord) (string, error) {
	return "", ErrNotConfigured
}
