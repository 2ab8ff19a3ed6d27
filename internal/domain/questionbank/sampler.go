package questionbank

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const (
	MinQuestionCount     = 1
	MaxQuestionCount     = 10
	DefaultQuestionCount = 5
)

var ErrInvalidQuestionCount = errors.New("invalid question count")

// ClampCount normalizes a requested question count. Missing or out-of-range
// values fall back to DefaultQuestionCount.
func ClampCount(n *int) int {
	if n == nil || *n < MinQuestionCount || *n > MaxQuestionCount {
		return DefaultQuestionCount
	}
	return *n
}

// Source picks the questions for a new interview.
type Source interface {
	SelectQuestions(ctx context.Context, role string, count int) ([]string, error)
}

// Sampler draws questions from a Lookup. When the bank holds at least count
// questions it samples without replacement; otherwise each draw is
// independent.
type Sampler struct {
	banks Lookup

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

var _ Source = (*Sampler)(nil)

func NewSampler(banks Lookup) *Sampler {
	return NewSamplerWithRand(banks, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSamplerWithRand uses the given generator, which makes draws
// reproducible in tests.
func NewSamplerWithRand(banks Lookup, rng *rand.Rand) *Sampler {
	return &Sampler{banks: banks, rng: rng}
}

func (s *Sampler) SelectQuestions(ctx context.Context, role string, count int) ([]string, error) {
	if count < MinQuestionCount || count > MaxQuestionCount {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidQuestionCount, count, MinQuestionCount, MaxQuestionCount)
	}

	bank, err := s.banks.Questions(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("load bank %q: %w", role, err)
	}
	// Banks built by hand may still repeat a question.
	bank = distinct(bank)
	if len(bank) == 0 {
		return nil, fmt.Errorf("%w: role %q has no questions", ErrInvalidQuestionCount, role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, count)
	if len(bank) >= count {
		for i, j := range s.rng.Perm(len(bank))[:count] {
			out[i] = bank[j]
		}
		return out, nil
	}

	for i := range out {
		out[i] = bank[s.rng.Intn(len(bank))]
	}
	return out, nil
}

func distinct(qs []string) []string {
	seen := make(map[string]bool, len(qs))
	out := qs[:0:0]
	for _, q := range qs {
		if !seen[q] {
			seen[q] = true
			out = append(out, q)
		}
	}
	return out
}
