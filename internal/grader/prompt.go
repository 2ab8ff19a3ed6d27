package grader

import (
	"fmt"
	"strings"

	"github.com/practice-partner/backend/internal/domain/interview"
)

// buildGradePrompt asks for a single JSON object. The schema goes last so it
// is the final thing the model reads.
func buildGradePrompt(question, answer string) string {
	return fmt.Sprintf(`You are a strict but fair interviewer assistant. I will give you a question and the candidate's answer.

RULES:
- verdict: exactly one of "Correct", "PartiallyCorrect" or "Incorrect".
- feedback: 1-2 sentences on what was good or missing.
- correction: a single short paragraph with a simple, correct answer the candidate can learn from.
- Keep each field short and in plain language.

QUESTION:
%s

CANDIDATE ANSWER:
%s

Respond with ONLY this JSON object, no explanation, no markdown:
{"verdict": "...", "feedback": "...", "correction": "..."}`,
		question, answer)
}

func buildSummaryPrompt(role string, log []interview.AnswerRecord) string {
	var b strings.Builder

	b.WriteString("You are an interviewer. Provide a 3-sentence overall assessment of the candidate based on these Q/A pairs.\n")
	fmt.Fprintf(&b, "Candidate role: %s\n", role)
	b.WriteString("Q/A pairs:\n")
	for _, rec := range log {
		fmt.Fprintf(&b, "\nQ: %s\nA: %s\nResult: %s\n", rec.Question, rec.UserAnswer, rec.Verdict)
	}
	b.WriteString("\nKeep it short and constructive.")

	return b.String()
}
