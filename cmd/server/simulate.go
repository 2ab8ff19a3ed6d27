package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/practice-partner/backend/internal/domain/interview"
	"github.com/practice-partner/backend/internal/simulation"
)

var simulateFlags struct {
	role       string
	count      int
	answers    []string
	interviews int
	workers    int
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play scripted interviews against the configured grader",
	Long: `Runs complete interviews through the interview service without HTTP,
using the configured grading provider. With --interviews 1 the transcript is
printed; otherwise a verdict tally across all interviews.`,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.StringVar(&simulateFlags.role, "role", "", "role to interview for (default: first role)")
	f.IntVarP(&simulateFlags.count, "count", "n", 3, "questions per interview")
	f.StringArrayVarP(&simulateFlags.answers, "answer", "a", nil, "answer to give, repeatable; reused in order")
	f.IntVar(&simulateFlags.interviews, "interviews", 1, "number of interviews to run")
	f.IntVar(&simulateFlags.workers, "workers", 4, "interviews run concurrently")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	script := simulation.Script{
		Role:    simulateFlags.role,
		Count:   simulateFlags.count,
		Answers: simulateFlags.answers,
	}
	if script.Role == "" {
		roles, err := a.banks.Roles(ctx)
		if err != nil {
			return err
		}
		if len(roles) == 0 {
			return fmt.Errorf("no roles configured")
		}
		script.Role = roles[0]
	}

	out := cmd.OutOrStdout()
	if simulateFlags.interviews <= 1 {
		t, err := simulation.Run(ctx, a.service, script)
		if err != nil {
			return err
		}
		t.Print(out)
		return nil
	}

	transcripts, err := simulation.RunMany(ctx, a.service, script, simulateFlags.interviews, simulateFlags.workers)
	if err != nil {
		return err
	}
	tally := simulation.Tally(transcripts)
	fmt.Fprintf(out, "%d interviews for %s\n", len(transcripts), script.Role)
	for _, v := range []interview.Verdict{interview.VerdictCorrect, interview.VerdictPartiallyCorrect, interview.VerdictIncorrect} {
		fmt.Fprintf(out, "%-18s %d\n", v+":", tally[v])
	}
	return nil
}
