// Package puzzle contains the catalogue of daily puzzles and the pure rules
// shared by every day: how input splits into lines, how days and parts are
// named, and how recorded runs are identified.
// This is part of the Functional Core - no I/O, only pure functions.
package puzzle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/example/aoc/internal/core/calibration"
	"github.com/example/aoc/internal/core/cubegame"
)

// Part is one of the two questions asked by each day.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Valid reports whether p names an existing part.
func (p Part) Valid() bool {
	return p == PartOne || p == PartTwo
}

// Solver computes one answer from the full puzzle input.
type Solver func(input string) uint64

// Day groups the solvers for one puzzle.
type Day struct {
	Number int
	Title  string
	Parts  map[Part]Solver
}

// Registry is an immutable catalogue of days keyed by day number.
type Registry struct {
	days map[int]Day
}

// NewRegistry builds a registry from the given days.
// Later days with a duplicate number replace earlier ones.
func NewRegistry(days ...Day) *Registry {
	r := &Registry{days: make(map[int]Day, len(days))}
	for _, d := range days {
		r.days[d.Number] = d
	}
	return r
}

// Default returns the registry of every solved day.
// thresholds is the bag used by day 2 part 1.
func Default(thresholds cubegame.Thresholds) *Registry {
	return NewRegistry(
		Day{
			Number: 1,
			Title:  "Trebuchet?!",
			Parts: map[Part]Solver{
				PartOne: func(input string) uint64 {
					return calibration.Sum(Lines(input), calibration.Literal)
				},
				PartTwo: func(input string) uint64 {
					return calibration.Sum(Lines(input), calibration.Spelled)
				},
			},
		},
		Day{
			Number: 2,
			Title:  "Cube Conundrum",
			Parts: map[Part]Solver{
				PartOne: func(input string) uint64 {
					return cubegame.SumPlayableIDs(Lines(input), thresholds)
				},
				PartTwo: func(input string) uint64 {
					return cubegame.SumPowers(Lines(input))
				},
			},
		},
	)
}

// Lookup returns the solver for a day and part.
func (r *Registry) Lookup(day int, part Part) (Solver, error) {
	d, ok := r.days[day]
	if !ok {
		return nil, fmt.Errorf("day %d is not solved yet", day)
	}
	if !part.Valid() {
		return nil, fmt.Errorf("invalid part %d: expected 1 or 2", part)
	}
	s, ok := d.Parts[part]
	if !ok {
		return nil, fmt.Errorf("day %d part %d is not solved yet", day, part)
	}
	return s, nil
}

// Day returns the registered day with the given number.
func (r *Registry) Day(number int) (Day, bool) {
	d, ok := r.days[number]
	return d, ok
}

// Days returns every registered day in ascending order.
func (r *Registry) Days() []Day {
	days := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Number < days[j].Number })
	return days
}

// SortedParts returns the parts of d in ascending order.
func (d Day) SortedParts() []Part {
	parts := make([]Part, 0, len(d.Parts))
	for p := range d.Parts {
		parts = append(parts, p)
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i] < parts[j] })
	return parts
}

// Lines splits puzzle input into lines. A trailing carriage return on each
// line and the empty line after a final newline are dropped.
func Lines(input string) []string {
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ParseDay accepts "1", "01", "day1" and "day01".
// Returns an error for anything else or for days outside 1..25.
func ParseDay(s string) (int, error) {
	raw := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "day")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: expected a number like 1, 01 or day01", s)
	}
	if n < 1 || n > 25 {
		return 0, fmt.Errorf("invalid day %q: must be between 1 and 25", s)
	}
	return n, nil
}

// ParsePart accepts "1" or "2".
func ParsePart(n int) (Part, error) {
	p := Part(n)
	if !p.Valid() {
		return 0, fmt.Errorf("invalid part %d: expected 1 or 2", n)
	}
	return p, nil
}

// InputFileName is the default file name holding the input of a day.
func InputFileName(day int) string {
	return fmt.Sprintf("%02d.txt", day)
}
