package interview

import "strings"

// Verdict is the graded outcome of a single answer.
type Verdict string

const (
	VerdictCorrect          Verdict = "Correct"
	VerdictPartiallyCorrect Verdict = "Partially correct"
	VerdictIncorrect        Verdict = "Incorrect"
)

// ParseVerdict maps free-form model output onto a Verdict. Case, spaces,
// hyphens and underscores are ignored. Anything unrecognized is Incorrect.
func ParseVerdict(s string) Verdict {
	norm := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '.':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))

	switch norm {
	case "correct":
		return VerdictCorrect
	case "partiallycorrect", "partial", "partlycorrect":
		return VerdictPartiallyCorrect
	default:
		return VerdictIncorrect
	}
}

// Valid reports whether v is one of the three known verdicts.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictCorrect, VerdictPartiallyCorrect, VerdictIncorrect:
		return true
	}
	return false
}

func (v Verdict) String() string {
	return string(v)
}
