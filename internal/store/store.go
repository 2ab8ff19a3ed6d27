package store

import (
	"context"
	"errors"

	"github.com/practice-partner/backend/internal/domain/interview"
)

var (
	ErrNotFound = errors.New("not found")
)

// SessionStore holds in-flight interview sessions. Implementations must be
// safe for concurrent use and must not share memory with callers: Get returns
// a copy and Put stores one.
type SessionStore interface {
	Get(ctx context.Context, id string) (*interview.Session, error)
	Put(ctx context.Context, s *interview.Session) error
	Delete(ctx context.Context, id string) error
	Len() int
}
