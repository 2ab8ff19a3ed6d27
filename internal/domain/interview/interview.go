package interview

import (
	"errors"
	"time"

	"github.com/practice-partner/backend/internal/id"
)

var (
	ErrNoQuestions      = errors.New("interview needs at least one question")
	ErrSessionCompleted = errors.New("interview session already completed")
	ErrQuestionMismatch = errors.New("answer record does not match the current question")
)

// AnswerRecord is one graded question/answer pair. Records are appended to a
// session in question order and never modified afterwards.
type AnswerRecord struct {
	Question   string  `json:"question"`
	UserAnswer string  `json:"user_answer"`
	Verdict    Verdict `json:"verdict"`
	Feedback   string  `json:"feedback"`
	Correction string  `json:"correction"`
}

// StateKind tags the two states a session can be in.
type StateKind int

const (
	AwaitingAnswer StateKind = iota
	Completed
)

func (k StateKind) String() string {
	if k == Completed {
		return "completed"
	}
	return "awaiting_answer"
}

// State is AwaitingAnswer(Index) or Completed. Index is meaningless once
// Completed.
type State struct {
	Kind  StateKind
	Index int
}

// Session is one candidate's interview.
type Session struct {
	ID           string
	Role         string
	Questions    []string
	CurrentIndex int
	AnswerLog    []AnswerRecord
	CreatedAt    time.Time
}

// New creates a session in AwaitingAnswer(0) for the given questions.
func New(role string, questions []string) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	qs := make([]string, len(questions))
	copy(qs, questions)

	return &Session{
		ID:           id.GenerateID(),
		Role:         role,
		Questions:    qs,
		CurrentIndex: 0,
		AnswerLog:    []AnswerRecord{},
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// State derives the current state from the cursor.
func (s *Session) State() State {
	if s.CurrentIndex >= len(s.Questions) {
		return State{Kind: Completed, Index: len(s.Questions)}
	}
	return State{Kind: AwaitingAnswer, Index: s.CurrentIndex}
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.State().Kind == Completed
}

// CurrentQuestion returns the question awaiting an answer.
func (s *Session) CurrentQuestion() (string, error) {
	if s.Done() {
		return "", ErrSessionCompleted
	}
	return s.Questions[s.CurrentIndex], nil
}

// Remaining is the number of questions still to be asked after the current one.
func (s *Session) Remaining() int {
	r := len(s.Questions) - s.CurrentIndex - 1
	if r < 0 {
		return 0
	}
	return r
}

// Record appends a graded answer for the current question and advances the
// cursor. The record's question must be the current question.
func (s *Session) Record(rec AnswerRecord) error {
	current, err := s.CurrentQuestion()
	if err != nil {
		return err
	}
	if rec.Question != current {
		return ErrQuestionMismatch
	}

	s.AnswerLog = append(s.AnswerLog, rec)
	s.CurrentIndex++
	return nil
}

// Clone returns a deep copy, so stores can hand out sessions without sharing
// slices with the caller.
func (s *Session) Clone() *Session {
	c := *s
	c.Questions = make([]string, len(s.Questions))
	copy(c.Questions, s.Questions)
	c.AnswerLog = make([]AnswerRecord, len(s.AnswerLog))
	copy(c.AnswerLog, s.AnswerLog)
	return &c
}
