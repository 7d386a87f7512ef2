package app

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/aoc/internal/core/cubegame"
	"github.com/example/aoc/internal/core/puzzle"
	"github.com/example/aoc/internal/ports/primary"
	"github.com/example/aoc/internal/ports/secondary"
)

// SolverOptions tunes a SolverService.
type SolverOptions struct {
	RecordRuns bool
	Thresholds cubegame.Thresholds // bag shown by day 2 explanations
}

// SolverServiceImpl implements the SolverService interface.
type SolverServiceImpl struct {
	registry   *puzzle.Registry
	input      secondary.InputSource
	runRepo    secondary.RunRepository
	recordRuns bool
	thresholds cubegame.Thresholds
	logger     *zap.Logger
}

// NewSolverService creates a new SolverService with injected dependencies.
// runRepo may be nil, in which case runs are never recorded.
func NewSolverService(
	registry *puzzle.Registry,
	input secondary.InputSource,
	runRepo secondary.RunRepository,
	opts SolverOptions,
	logger *zap.Logger,
) *SolverServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SolverServiceImpl{
		registry:   registry,
		input:      input,
		runRepo:    runRepo,
		recordRuns: opts.RecordRuns && runRepo != nil,
		thresholds: opts.Thresholds,
		logger:     logger,
	}
}

// Fingerprint identifies puzzle input without storing it.
func Fingerprint(input string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(input))
}

// Solve computes one answer and records the run unless disabled.
func (s *SolverServiceImpl) Solve(ctx context.Context, req primary.SolveRequest) (*primary.Answer, error) {
	part, err := puzzle.ParsePart(req.Part)
	if err != nil {
		return nil, err
	}
	solver, err := s.registry.Lookup(req.Day, part)
	if err != nil {
		return nil, err
	}

	text, source, err := s.input.Read(ctx, req.Day, req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load input for day %d: %w", req.Day, err)
	}

	answer := s.solve(req.Day, part, solver, text, source)

	if s.recordRuns && !req.NoRecord {
		if err := s.record(ctx, answer); err != nil {
			return nil, err
		}
	}

	return answer, nil
}

// SolveAll computes every registered (day, part) from the default inputs.
// Parts are solved concurrently; runs are recorded afterwards in order so
// run IDs follow (day, part).
func (s *SolverServiceImpl) SolveAll(ctx context.Context, req primary.SolveAllRequest) ([]*primary.Answer, error) {
	type job struct {
		day    puzzle.Day
		part   puzzle.Part
		solver puzzle.Solver
	}

	var jobs []job
	for _, d := range s.registry.Days() {
		for _, p := range d.SortedParts() {
			jobs = append(jobs, job{day: d, part: p, solver: d.Parts[p]})
		}
	}

	answers := make([]*primary.Answer, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		g.Go(func() error {
			text, source, err := s.input.ReadFromDir(gctx, req.InputDir, j.day.Number)
			if err != nil {
				return fmt.Errorf("failed to load input for day %d: %w", j.day.Number, err)
			}
			answers[i] = s.solve(j.day.Number, j.part, j.solver, text, source)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.recordRuns && !req.NoRecord {
		for _, a := range answers {
			if err := s.record(ctx, a); err != nil {
				return nil, err
			}
		}
	}

	return answers, nil
}

func (s *SolverServiceImpl) solve(day int, part puzzle.Part, solver puzzle.Solver, text, source string) *primary.Answer {
	start := time.Now()
	value := solver(text)
	elapsed := time.Since(start)

	answer := &primary.Answer{
		Day:         day,
		Part:        int(part),
		Value:       value,
		Source:      source,
		Fingerprint: Fingerprint(text),
		Duration:    elapsed,
	}
	if d, ok := s.registry.Day(day); ok {
		answer.Title = d.Title
	}

	if ce := s.logger.Check(zap.DebugLevel, "solved puzzle"); ce != nil {
		ce.Write(
			zap.Int("day", day),
			zap.Int("part", int(part)),
			zap.Uint64("answer", value),
			zap.String("source", source),
			zap.Int("skipped_lines", countSkipped(day, part, puzzle.Lines(text))),
			zap.Duration("duration", elapsed))
	}

	return answer
}

func (s *SolverServiceImpl) record(ctx context.Context, answer *primary.Answer) error {
	id, err := s.runRepo.GetNextID(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate run ID: %w", err)
	}

	record := &secondary.RunRecord{
		ID:          id,
		Day:         answer.Day,
		Part:        answer.Part,
		Answer:      answer.Value,
		Source:      answer.Source,
		Fingerprint: answer.Fingerprint,
		DurationNS:  answer.Duration.Nanoseconds(),
	}
	if err := s.runRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	answer.RunID = id
	s.logger.Debug("recorded run", zap.String("run_id", id), zap.String("fingerprint", answer.Fingerprint))
	return nil
}

// ListDays returns the registered puzzles.
func (s *SolverServiceImpl) ListDays(ctx context.Context) ([]*primary.DayInfo, error) {
	days := s.registry.Days()
	infos := make([]*primary.DayInfo, len(days))
	for i, d := range days {
		info := &primary.DayInfo{Number: d.Number, Title: d.Title}
		for _, p := range d.SortedParts() {
			info.Parts = append(info.Parts, int(p))
		}
		infos[i] = info
	}
	return infos, nil
}

// ListRuns returns recorded runs, newest first.
func (s *SolverServiceImpl) ListRuns(ctx context.Context, filters primary.RunFilters) ([]*primary.Run, error) {
	if s.runRepo == nil {
		return nil, nil
	}

	records, err := s.runRepo.List(ctx, secondary.RunFilters{Day: filters.Day, Limit: filters.Limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]*primary.Run, len(records))
	for i, r := range records {
		runs[i] = s.recordToRun(r)
	}
	return runs, nil
}

// GetRun returns a single recorded run.
func (s *SolverServiceImpl) GetRun(ctx context.Context, id string) (*primary.Run, error) {
	if puzzle.ParseRunNumber(id) < 0 {
		return nil, fmt.Errorf("invalid run ID %q: expected RUN-NNN", id)
	}
	if s.runRepo == nil {
		return nil, fmt.Errorf("run %s not found", id)
	}

	record, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.recordToRun(record), nil
}

// Helper methods

func (s *SolverServiceImpl) recordToRun(r *secondary.RunRecord) *primary.Run {
	return &primary.Run{
		ID:          r.ID,
		Day:         r.Day,
		Part:        r.Part,
		Answer:      r.Answer,
		Source:      r.Source,
		Fingerprint: r.Fingerprint,
		Duration:    time.Duration(r.DurationNS),
		CreatedAt:   r.CreatedAt,
	}
}

// Ensure SolverServiceImpl implements the interface
var _ primary.SolverService = (*SolverServiceImpl)(nil)
