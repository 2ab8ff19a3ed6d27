// internal/service/interview.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/practice-partner/backend/internal/domain/interview"
	"github.com/practice-partner/backend/internal/domain/questionbank"
	"github.com/practice-partner/backend/internal/grader"
	"github.com/practice-partner/backend/internal/metrics"
	"github.com/practice-partner/backend/internal/store"
)

// ErrUnknownSession is returned for ids that never existed or whose
// interview has already completed.
var ErrUnknownSession = errors.New("unknown session")

// StartResult is returned when an interview begins.
type StartResult struct {
	SessionID string
	Question  string
	Remaining int
}

// AnswerResult carries the grade for one answer plus either the next
// question or, once Done, the summary and full log.
type AnswerResult struct {
	grader.Result

	NextQuestion string
	Remaining    int

	Done    bool
	Summary string
	Log     []interview.AnswerRecord
}

// InterviewService runs interview sessions: it picks questions, grades each
// answer, and closes the session with a summary after the last one.
//
// Calls for the same session are serialized; calls for different sessions
// never wait on each other.
type InterviewService struct {
	sessions   store.SessionStore
	questions  questionbank.Source
	grader     grader.Grader
	summarizer grader.Summarizer
	metrics    *metrics.Metrics
	logger     *slog.Logger

	locks *sessionLocks
}

// NewInterviewService creates an InterviewService. m may be nil; when set,
// its active-sessions gauge is bound to sessions.
func NewInterviewService(
	sessions store.SessionStore,
	questions questionbank.Source,
	g grader.Grader,
	s grader.Summarizer,
	m *metrics.Metrics,
	logger *slog.Logger,
) *InterviewService {
	if m != nil {
		m.WatchSessions(sessions.Len)
	}
	return &InterviewService{
		sessions:   sessions,
		questions:  questions,
		grader:     g,
		summarizer: s,
		metrics:    m,
		logger:     logger,
		locks:      newSessionLocks(),
	}
}

// Start creates a session with count questions for role.
func (is *InterviewService) Start(ctx context.Context, role string, count int) (*StartResult, error) {
	qs, err := is.questions.SelectQuestions(ctx, role, count)
	if err != nil {
		return nil, err
	}

	sess, err := interview.New(role, qs)
	if err != nil {
		return nil, err
	}

	if err := is.sessions.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	is.logger.Info("interview started",
		"session_id", sess.ID,
		"role", role,
		"questions", len(qs),
	)
	if is.metrics != nil {
		is.metrics.InterviewsStarted.Inc()
	}

	first, _ := sess.CurrentQuestion()
	return &StartResult{
		SessionID: sess.ID,
		Question:  first,
		Remaining: sess.Remaining(),
	}, nil
}

// SubmitAnswer grades answer against the session's current question and
// advances it. The final answer deletes the session and returns the summary.
//
// Grading runs on a context detached from ctx's cancellation: once started,
// a submission always runs to completion.
func (is *InterviewService) SubmitAnswer(ctx context.Context, sessionID, answer string) (*AnswerResult, error) {
	unlock := is.locks.lock(sessionID)
	defer unlock()

	ctx = context.WithoutCancel(ctx)

	sess, err := is.sessions.Get(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnknownSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	question, err := sess.CurrentQuestion()
	if err != nil {
		// Completed sessions are deleted before the lock is released, so
		// this means the store holds a session it should not.
		return nil, ErrUnknownSession
	}

	res := is.grade(ctx, question, answer)

	if err := sess.Record(interview.AnswerRecord{
		Question:   question,
		UserAnswer: answer,
		Verdict:    res.Verdict,
		Feedback:   res.Feedback,
		Correction: res.Correction,
	}); err != nil {
		return nil, err
	}

	is.logger.Info("answer graded",
		"session_id", sessionID,
		"index", sess.CurrentIndex-1,
		"verdict", res.Verdict,
	)
	if is.metrics != nil {
		is.metrics.AnswersGraded.WithLabelValues(res.Verdict.String()).Inc()
	}

	if !sess.Done() {
		if err := is.sessions.Put(ctx, sess); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		next, _ := sess.CurrentQuestion()
		return &AnswerResult{
			Result:       res,
			NextQuestion: next,
			Remaining:    sess.Remaining(),
		}, nil
	}

	return is.complete(ctx, sess, res)
}

func (is *InterviewService) grade(ctx context.Context, question, answer string) grader.Result {
	res, err := is.grader.Grade(ctx, question, answer)
	if err == nil && res.Verdict.Valid() {
		return res
	}
	// Graders built by grader.New never fail; this covers ones that do.
	is.logger.Warn("grader returned an error, using heuristic", "error", err)
	res, _ = grader.HeuristicGrader{}.Grade(ctx, question, answer)
	return res
}

func (is *InterviewService) complete(ctx context.Context, sess *interview.Session, last grader.Result) (*AnswerResult, error) {
	summary, err := is.summarizer.Summarize(ctx, sess.Role, sess.AnswerLog)
	if err != nil || summary == "" {
		is.logger.Warn("summary unavailable, using default", "session_id", sess.ID, "error", err)
		summary = grader.DefaultSummary
	}

	if err := is.sessions.Delete(ctx, sess.ID); err != nil {
		return nil, fmt.Errorf("delete session: %w", err)
	}

	is.logger.Info("interview completed",
		"session_id", sess.ID,
		"role", sess.Role,
		"answers", len(sess.AnswerLog),
	)
	if is.metrics != nil {
		is.metrics.InterviewsCompleted.Inc()
	}

	return &AnswerResult{
		Result:  last,
		Done:    true,
		Summary: summary,
		Log:     sess.AnswerLog,
	}, nil
}

// ActiveSessions is the number of interviews in progress, including
// abandoned ones.
func (is *InterviewService) ActiveSessions() int {
	return is.sessions.Len()
}
