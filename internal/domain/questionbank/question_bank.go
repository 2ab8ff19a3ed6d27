package questionbank

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrDuplicateQuestion is returned when a bank already holds a question.
var ErrDuplicateQuestion = errors.New("duplicate question")

// Bank is the pool of candidate questions for one job role.
type Bank struct {
	Role      string
	Questions []string
}

func New(role string) *Bank {
	return &Bank{
		Role:      role,
		Questions: []string{},
	}
}

func (b *Bank) AddQuestion(question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return errors.New("question cannot be empty")
	}
	if slices.Contains(b.Questions, question) {
		return fmt.Errorf("%w: %q", ErrDuplicateQuestion, question)
	}

	b.Questions = append(b.Questions, question)
	return nil
}

// Lookup resolves a role to its questions. An unknown role is not an error:
// implementations return an empty slice.
type Lookup interface {
	Questions(ctx context.Context, role string) ([]string, error)
	Roles(ctx context.Context) ([]string, error)
}
