package grader

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/practice-partner/backend/internal/domain/interview"
)

// minSubstantialAnswer is the trimmed length, in characters, an answer must
// exceed to earn PartiallyCorrect from the heuristic grader.
const minSubstantialAnswer = 20

// HeuristicGrader grades by answer length alone. It keeps interviews moving
// when no model is reachable; it does not try to judge correctness.
type HeuristicGrader struct{}

var _ Grader = HeuristicGrader{}

func (HeuristicGrader) Grade(_ context.Context, _ string, answer string) (Result, error) {
	return heuristicResult(answer), nil
}

func heuristicResult(answer string) Result {
	if utf8.RuneCountInString(strings.TrimSpace(answer)) > minSubstantialAnswer {
		return Result{
			Verdict:    interview.VerdictPartiallyCorrect,
			Feedback:   "You have some correct points but missed details.",
			Correction: "Key idea: give a concise definition and the main points.",
		}
	}
	return Result{
		Verdict:    interview.VerdictIncorrect,
		Feedback:   "Short answer, missing key points.",
		Correction: "Try to mention the definition and 2-3 main features.",
	}
}

// DefaultSummary is the closing message used whenever no model summary is
// available.
const DefaultSummary = "Interview finished. Review answers for improvement."

// StaticSummarizer always returns DefaultSummary.
type StaticSummarizer struct{}

var _ Summarizer = StaticSummarizer{}

func (StaticSummarizer) Summarize(context.Context, string, []interview.AnswerRecord) (string, error) {
	return DefaultSummary, nil
}
