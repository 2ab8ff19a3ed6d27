package interview_test

import (
	"errors"
	"testing"

	"github.com/practice-partner/backend/internal/domain/interview"
)

func newSession(t *testing.T, questions ...string) *interview.Session {
	t.Helper()
	s, err := interview.New("Python Developer", questions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func answer(q, a string) interview.AnswerRecord {
	return interview.AnswerRecord{
		Question:   q,
		UserAnswer: a,
		Verdict:    interview.VerdictIncorrect,
	}
}

func TestNew_StartsAwaitingFirstAnswer(t *testing.T) {
	s := newSession(t, "Q1", "Q2", "Q3")

	if s.ID == "" {
		t.Error("expected non-empty ID")
	}
	state := s.State()
	if state.Kind != interview.AwaitingAnswer || state.Index != 0 {
		t.Errorf("expected AwaitingAnswer(0), got %v(%d)", state.Kind, state.Index)
	}
	if s.Remaining() != 2 {
		t.Errorf("expected 2 remaining, got %d", s.Remaining())
	}
	if len(s.AnswerLog) != 0 {
		t.Errorf("expected empty answer log, got %d records", len(s.AnswerLog))
	}
}

func TestNew_NoQuestions(t *testing.T) {
	_, err := interview.New("Python Developer", nil)
	if !errors.Is(err, interview.ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
}

func TestNew_CopiesQuestions(t *testing.T) {
	qs := []string{"Q1", "Q2"}
	s := newSession(t, qs...)
	qs[0] = "mutated"

	if s.Questions[0] != "Q1" {
		t.Errorf("expected session questions to be independent of input, got %q", s.Questions[0])
	}
}

func TestRecord_AdvancesInOrder(t *testing.T) {
	s := newSession(t, "Q1", "Q2", "Q3")

	for k, q := range s.Questions {
		current, err := s.CurrentQuestion()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if current != q {
			t.Fatalf("expected current question %q, got %q", q, current)
		}
		if err := s.Record(answer(q, "answer")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.CurrentIndex != len(s.AnswerLog) {
			t.Fatalf("cursor %d out of sync with log length %d", s.CurrentIndex, len(s.AnswerLog))
		}
		for i := 0; i <= k; i++ {
			if s.AnswerLog[i].Question != s.Questions[i] {
				t.Errorf("log[%d] question %q, want %q", i, s.AnswerLog[i].Question, s.Questions[i])
			}
		}
	}

	if !s.Done() {
		t.Error("expected session to be completed")
	}
	if s.State().Kind != interview.Completed {
		t.Errorf("expected Completed state, got %v", s.State().Kind)
	}
}

func TestRecord_RejectsAfterCompletion(t *testing.T) {
	s := newSession(t, "Q1")
	if err := s.Record(answer("Q1", "a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := s.Record(answer("Q1", "again"))
	if !errors.Is(err, interview.ErrSessionCompleted) {
		t.Errorf("expected ErrSessionCompleted, got %v", err)
	}
	if len(s.AnswerLog) != 1 {
		t.Errorf("expected log to stay at 1 record, got %d", len(s.AnswerLog))
	}
}

func TestRecord_RejectsWrongQuestion(t *testing.T) {
	s := newSession(t, "Q1", "Q2")

	err := s.Record(answer("Q2", "skipping ahead"))
	if !errors.Is(err, interview.ErrQuestionMismatch) {
		t.Errorf("expected ErrQuestionMismatch, got %v", err)
	}
	if s.CurrentIndex != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", s.CurrentIndex)
	}
}

func TestClone_IsDeep(t *testing.T) {
	s := newSession(t, "Q1", "Q2")
	c := s.Clone()

	if err := c.Record(answer("Q1", "a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.CurrentIndex != 0 || len(s.AnswerLog) != 0 {
		t.Error("expected original session to be unaffected by clone mutation")
	}
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		in   string
		want interview.Verdict
	}{
		{"Correct", interview.VerdictCorrect},
		{" correct ", interview.VerdictCorrect},
		{"Partially correct", interview.VerdictPartiallyCorrect},
		{"PartiallyCorrect", interview.VerdictPartiallyCorrect},
		{"partially_correct", interview.VerdictPartiallyCorrect},
		{"Incorrect", interview.VerdictIncorrect},
		{"", interview.VerdictIncorrect},
		{"excellent", interview.VerdictIncorrect},
	}

	for _, tt := range tests {
		if got := interview.ParseVerdict(tt.in); got != tt.want {
			t.Errorf("ParseVerdict(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
