package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/practice-partner/backend/internal/domain/interview"
	"github.com/practice-partner/backend/internal/store"
)

func TestMemorySessionStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemorySessionStore()

	sess, err := interview.New("Data Analyst", []string{"Q1", "Q2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Put(ctx, sess); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := s.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.ID != sess.ID || got.Role != "Data Analyst" || len(got.Questions) != 2 {
		t.Errorf("unexpected session: %+v", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestMemorySessionStore_GetNonExistent(t *testing.T) {
	s := store.NewMemorySessionStore()

	_, err := s.Get(context.Background(), "nonexistent")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemorySessionStore_IsolatesCopies(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemorySessionStore()

	sess, _ := interview.New("Data Analyst", []string{"Q1", "Q2"})
	s.Put(ctx, sess)

	// Mutating the caller's value after Put must not leak into the store.
	sess.Record(interview.AnswerRecord{Question: "Q1", Verdict: interview.VerdictCorrect})

	got, _ := s.Get(ctx, sess.ID)
	if got.CurrentIndex != 0 || len(got.AnswerLog) != 0 {
		t.Errorf("expected stored session untouched, got index %d", got.CurrentIndex)
	}

	// Nor must mutating a value returned by Get.
	got.Record(interview.AnswerRecord{Question: "Q1", Verdict: interview.VerdictCorrect})
	again, _ := s.Get(ctx, sess.ID)
	if again.CurrentIndex != 0 {
		t.Errorf("expected stored session untouched, got index %d", again.CurrentIndex)
	}
}

func TestMemorySessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemorySessionStore()

	sess, _ := interview.New("Data Analyst", []string{"Q1"})
	s.Put(ctx, sess)

	if err := s.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get(ctx, sess.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	// Idempotent.
	if err := s.Delete(ctx, sess.ID); err != nil {
		t.Errorf("second Delete() error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestMemorySessionStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemorySessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, _ := interview.New("Data Analyst", []string{"Q1"})
			s.Put(ctx, sess)
			s.Get(ctx, sess.ID)
			s.Delete(ctx, sess.ID)
		}()
	}
	wg.Wait()

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}
