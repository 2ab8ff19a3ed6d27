package grader

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/practice-partner/backend/internal/domain/interview"
)

// modelGrade is what the model is asked to return. short_feedback is the
// field name older prompts used; both are accepted.
type modelGrade struct {
	Verdict       string `json:"verdict"`
	Feedback      string `json:"feedback"`
	ShortFeedback string `json:"short_feedback"`
	Correction    string `json:"correction"`
}

// ParseResult extracts a Result from raw model text. Leading commentary and
// code fences are skipped; missing fields default to Incorrect and empty
// strings.
func ParseResult(text string) (Result, error) {
	jsonStr := extractJSON(text)
	if jsonStr == "" {
		return Result{}, &GradeError{Reason: "no JSON object found in model response", Wrapped: ErrMalformedResponse}
	}

	var g modelGrade
	if err := json.Unmarshal([]byte(jsonStr), &g); err != nil {
		return Result{}, &GradeError{Reason: "invalid JSON from model", Wrapped: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}

	feedback := g.Feedback
	if feedback == "" {
		feedback = g.ShortFeedback
	}

	return Result{
		Verdict:    interview.ParseVerdict(g.Verdict),
		Feedback:   strings.TrimSpace(feedback),
		Correction: strings.TrimSpace(g.Correction),
	}, nil
}

// extractJSON returns the balanced JSON object that starts at the first '{'
// in s. Braces inside quoted strings are ignored.
func extractJSON(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
