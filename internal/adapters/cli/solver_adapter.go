// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/example/aoc/internal/ports/primary"
)

var (
	answerColor  = color.New(color.FgHiGreen, color.Bold)
	runIDColor   = color.New(color.FgCyan)
	skippedColor = color.New(color.FgYellow)
	dimColor     = color.New(color.FgHiBlack)
)

// SolverAdapter is a thin adapter that translates CLI operations to SolverService calls.
// It depends only on the SolverService interface, enabling easy testing with mocks.
type SolverAdapter struct {
	service primary.SolverService
	out     io.Writer
}

// NewSolverAdapter creates a new SolverAdapter with the given service.
func NewSolverAdapter(service primary.SolverService, out io.Writer) *SolverAdapter {
	return &SolverAdapter{
		service: service,
		out:     out,
	}
}

// Solve solves the requested parts of a day and prints each answer.
// part 0 solves every part of the day.
func (a *SolverAdapter) Solve(ctx context.Context, day, part int, inputPath string, noRecord bool) error {
	parts := []int{part}
	if part == 0 {
		parts = []int{1, 2}
	}

	for _, p := range parts {
		answer, err := a.service.Solve(ctx, primary.SolveRequest{
			Day:       day,
			Part:      p,
			InputPath: inputPath,
			NoRecord:  noRecord,
		})
		if err != nil {
			return err
		}
		a.printAnswer(answer)
	}
	return nil
}

// SolveAll solves every registered part and prints the answers as a table.
func (a *SolverAdapter) SolveAll(ctx context.Context, inputDir string, noRecord bool) error {
	answers, err := a.service.SolveAll(ctx, primary.SolveAllRequest{
		InputDir: inputDir,
		NoRecord: noRecord,
	})
	if err != nil {
		return fmt.Errorf("failed to solve puzzles: %w", err)
	}

	fmt.Fprintf(a.out, "\n%-5s %-5s %-22s %-20s %s\n", "DAY", "PART", "TITLE", "ANSWER", "TIME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────")
	for _, ans := range answers {
		fmt.Fprintf(a.out, "%-5d %-5d %-22s %-20s %s\n",
			ans.Day, ans.Part, ans.Title, answerColor.Sprint(ans.Value), formatDuration(ans.Duration))
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *SolverAdapter) printAnswer(ans *primary.Answer) {
	fmt.Fprintf(a.out, "Day %d part %d: %s", ans.Day, ans.Part, answerColor.Sprint(ans.Value))
	fmt.Fprint(a.out, dimColor.Sprintf("  (%s, %s)", ans.Source, formatDuration(ans.Duration)))
	if ans.RunID != "" {
		fmt.Fprintf(a.out, " %s", runIDColor.Sprint(ans.RunID))
	}
	fmt.Fprintln(a.out)
}

// Explain prints a per-line breakdown of a day's input.
func (a *SolverAdapter) Explain(ctx context.Context, day int, inputPath string) error {
	exp, err := a.service.Explain(ctx, primary.ExplainRequest{Day: day, InputPath: inputPath})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Day %d: %s\n\n", exp.Day, exp.Title)
	skipped := 0
	for _, line := range exp.Lines {
		fmt.Fprintf(a.out, "%4d  %s\n", line.Number, line.Text)
		if line.Skipped {
			skipped++
			fmt.Fprintf(a.out, "      %s\n", skippedColor.Sprintf("skipped: %s", line.Reason))
			continue
		}
		fields := make([]string, len(line.Fields))
		for i, f := range line.Fields {
			fields[i] = f.Label + "=" + f.Value
		}
		fmt.Fprintf(a.out, "      %s\n", strings.Join(fields, " "))
	}
	fmt.Fprintf(a.out, "\n%d line(s), %d skipped\n", len(exp.Lines), skipped)
	return nil
}

// Days lists the registered puzzles.
func (a *SolverAdapter) Days(ctx context.Context) error {
	days, err := a.service.ListDays(ctx)
	if err != nil {
		return fmt.Errorf("failed to list days: %w", err)
	}

	if len(days) == 0 {
		fmt.Fprintln(a.out, "No puzzles registered")
		return nil
	}

	for _, d := range days {
		parts := make([]string, len(d.Parts))
		for i, p := range d.Parts {
			parts[i] = fmt.Sprint(p)
		}
		fmt.Fprintf(a.out, "Day %2d  %-22s parts: %s\n", d.Number, d.Title, strings.Join(parts, ", "))
	}
	return nil
}

// History lists recorded runs.
func (a *SolverAdapter) History(ctx context.Context, day, limit int) error {
	runs, err := a.service.ListRuns(ctx, primary.RunFilters{Day: day, Limit: limit})
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No runs recorded")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-5s %-5s %-20s %-18s %s\n", "ID", "DAY", "PART", "ANSWER", "INPUT", "CREATED")
	fmt.Fprintln(a.out, "──────────────────────────────────────────────────────────────────────────────────")
	for _, r := range runs {
		fmt.Fprintf(a.out, "%-10s %-5d %-5d %-20d %-18s %s\n",
			r.ID, r.Day, r.Part, r.Answer, r.Fingerprint, r.CreatedAt)
	}
	fmt.Fprintln(a.out)
	return nil
}

// ShowRun prints the details of one recorded run.
func (a *SolverAdapter) ShowRun(ctx context.Context, id string) error {
	run, err := a.service.GetRun(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nRun:      %s\n", runIDColor.Sprint(run.ID))
	fmt.Fprintf(a.out, "Puzzle:   day %d part %d\n", run.Day, run.Part)
	fmt.Fprintf(a.out, "Answer:   %s\n", answerColor.Sprint(run.Answer))
	fmt.Fprintf(a.out, "Input:    %s %s\n", run.Source, dimColor.Sprintf("(%s)", run.Fingerprint))
	fmt.Fprintf(a.out, "Duration: %s\n", formatDuration(run.Duration))
	fmt.Fprintf(a.out, "Recorded: %s\n", run.CreatedAt)
	fmt.Fprintln(a.out)
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.Round(10 * time.Microsecond).String()
	}
}
