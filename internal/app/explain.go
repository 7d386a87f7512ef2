package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/example/aoc/internal/core/calibration"
	"github.com/example/aoc/internal/core/cubegame"
	"github.com/example/aoc/internal/core/puzzle"
	"github.com/example/aoc/internal/ports/primary"
)

// Explain returns a per-line breakdown of how a day reads its input.
func (s *SolverServiceImpl) Explain(ctx context.Context, req primary.ExplainRequest) (*primary.Explanation, error) {
	d, ok := s.registry.Day(req.Day)
	if !ok {
		return nil, fmt.Errorf("day %d is not solved yet", req.Day)
	}

	text, _, err := s.input.Read(ctx, req.Day, req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load input for day %d: %w", req.Day, err)
	}

	var explainLine func(n int, line string) *primary.LineExplanation
	switch req.Day {
	case 1:
		explainLine = explainCalibrationLine
	case 2:
		explainLine = s.explainGameLine
	default:
		return nil, fmt.Errorf("day %d has no explanation", req.Day)
	}

	exp := &primary.Explanation{Day: d.Number, Title: d.Title}
	for i, line := range puzzle.Lines(text) {
		exp.Lines = append(exp.Lines, explainLine(i+1, line))
	}
	return exp, nil
}

func explainCalibrationLine(n int, line string) *primary.LineExplanation {
	le := &primary.LineExplanation{Number: n, Text: line}

	literal, okLiteral := calibration.Value(line, calibration.Literal)
	spelled, okSpelled := calibration.Value(line, calibration.Spelled)
	if !okSpelled {
		le.Skipped = true
		le.Reason = "no digit"
		return le
	}

	le.Fields = append(le.Fields,
		primary.Field{Label: "literal", Value: optionalValue(literal, okLiteral)},
		primary.Field{Label: "spelled", Value: strconv.FormatUint(uint64(spelled), 10)},
		primary.Field{Label: "forward", Value: calibration.ReplaceSpelledDigits(line)},
		primary.Field{Label: "backward", Value: calibration.ReplaceSpelledDigitsFromRight(line)},
	)
	return le
}

func optionalValue(v uint, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatUint(uint64(v), 10)
}

func (s *SolverServiceImpl) explainGameLine(n int, line string) *primary.LineExplanation {
	le := &primary.LineExplanation{Number: n, Text: line}

	g, err := cubegame.Parse(line)
	if err != nil {
		le.Skipped = true
		le.Reason = err.Error()
		return le
	}

	le.Fields = append(le.Fields,
		primary.Field{Label: "id", Value: strconv.FormatUint(g.ID, 10)},
		primary.Field{Label: cubegame.Red.String(), Value: strconv.FormatUint(g.MaxRed, 10)},
		primary.Field{Label: cubegame.Green.String(), Value: strconv.FormatUint(g.MaxGreen, 10)},
		primary.Field{Label: cubegame.Blue.String(), Value: strconv.FormatUint(g.MaxBlue, 10)},
		primary.Field{Label: "playable", Value: strconv.FormatBool(g.Playable(s.thresholds))},
		primary.Field{Label: "power", Value: strconv.FormatUint(g.Power(), 10)},
	)
	return le
}

// countSkipped reports how many lines the solver of a day and part ignores.
func countSkipped(day int, part puzzle.Part, lines []string) int {
	mode := calibration.Spelled
	if part == puzzle.PartOne {
		mode = calibration.Literal
	}

	skipped := 0
	for _, line := range lines {
		switch day {
		case 1:
			if _, ok := calibration.Value(line, mode); !ok {
				skipped++
			}
		case 2:
			if _, err := cubegame.Parse(line); err != nil {
				skipped++
			}
		}
	}
	return skipped
}
