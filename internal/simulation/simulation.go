// Package simulation plays scripted interviews through the interview
// service, without HTTP. The server's simulate command uses it to exercise
// a grading configuration end to end.
package simulation

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/practice-partner/backend/internal/domain/interview"
	"github.com/practice-partner/backend/internal/service"
	"github.com/practice-partner/backend/internal/worker"
)

// Script describes one simulated candidate.
type Script struct {
	Role  string
	Count int
	// Answers are given in order and reused cyclically. An empty list
	// answers every question with an empty string.
	Answers []string
}

type Transcript struct {
	SessionID string
	Role      string
	Log       []interview.AnswerRecord
	Summary   string
}

// Run plays one interview to completion.
func Run(ctx context.Context, svc *service.InterviewService, script Script) (*Transcript, error) {
	started, err := svc.Start(ctx, script.Role, script.Count)
	if err != nil {
		return nil, fmt.Errorf("start interview: %w", err)
	}

	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := svc.SubmitAnswer(ctx, started.SessionID, answerAt(script.Answers, i))
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i+1, err)
		}
		if res.Done {
			return &Transcript{
				SessionID: started.SessionID,
				Role:      script.Role,
				Log:       res.Log,
				Summary:   res.Summary,
			}, nil
		}
	}
}

func answerAt(answers []string, i int) string {
	if len(answers) == 0 {
		return ""
	}
	return answers[i%len(answers)]
}

type outcome struct {
	transcript *Transcript
	err        error
}

// RunMany plays n copies of script concurrently on at most workers
// goroutines. Transcripts are returned in submission order. If any interview
// fails, the first failure seen is returned once all of them have finished.
func RunMany(ctx context.Context, svc *service.InterviewService, script Script, n, workers int) ([]*Transcript, error) {
	pool := worker.NewPool[outcome](workers, n)

	go func() {
		for i := 0; i < n; i++ {
			pool.Submit(strconv.Itoa(i), func() outcome {
				t, err := Run(ctx, svc, script)
				return outcome{transcript: t, err: err}
			})
		}
		pool.Close()
	}()

	transcripts := make([]*Transcript, n)
	var errs []error
	for r := range pool.Results() {
		if r.Output.err != nil {
			errs = append(errs, fmt.Errorf("interview %s: %w", r.JobID, r.Output.err))
			continue
		}
		i, _ := strconv.Atoi(r.JobID)
		transcripts[i] = r.Output.transcript
	}

	if len(errs) > 0 {
		return nil, errs[0]
	}
	return transcripts, nil
}

// Print writes a human-readable transcript.
func (t *Transcript) Print(w io.Writer) {
	fmt.Fprintf(w, "Session %s (%s)\n", t.SessionID, t.Role)
	for i, rec := range t.Log {
		fmt.Fprintf(w, "\n=== Question %d ===\n", i+1)
		fmt.Fprintf(w, "Q: %s\n", rec.Question)
		fmt.Fprintf(w, "A: %s\n", rec.UserAnswer)
		fmt.Fprintf(w, "Verdict: %s\n", rec.Verdict)
		if rec.Feedback != "" {
			fmt.Fprintf(w, "Feedback: %s\n", rec.Feedback)
		}
		if rec.Verdict != interview.VerdictCorrect && rec.Correction != "" {
			fmt.Fprintf(w, "Correction: %s\n", rec.Correction)
		}
	}
	fmt.Fprintf(w, "\nSummary: %s\n", t.Summary)
}

// Tally counts verdicts across transcripts.
func Tally(transcripts []*Transcript) map[interview.Verdict]int {
	out := make(map[interview.Verdict]int)
	for _, t := range transcripts {
		for _, rec := range t.Log {
			out[rec.Verdict]++
		}
	}
	return out
}
