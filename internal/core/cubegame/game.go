// Package cubegame contains the pure business logic for cube game records:
// parsing a record line, checking it against a bag of cubes and computing
// its power.
// This is part of the Functional Core - no I/O, only pure functions.
package cubegame

import "fmt"

// Color identifies one of the three cube colors.
type Color int

const (
	// Red cubes.
	Red Color = iota
	// Green cubes.
	Green
	// Blue cubes.
	Blue
)

// String returns the color keyword as it appears in a record.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Thresholds is the number of cubes of each color in the bag.
type Thresholds struct {
	Red   uint64
	Green uint64
	Blue  uint64
}

// DefaultThresholds is the bag used by the first puzzle part.
var DefaultThresholds = Thresholds{Red: 12, Green: 13, Blue: 14}

// Game is one parsed record line. Each maximum is the largest count of that
// color drawn in any group of the record, or 0 when the color never appears.
type Game struct {
	ID       uint64
	MaxRed   uint64
	MaxGreen uint64
	MaxBlue  uint64
}

// observe folds one (color, count) draw into the record.
func (g *Game) observe(c Color, count uint64) {
	switch c {
	case Red:
		g.MaxRed = max(g.MaxRed, count)
	case Green:
		g.MaxGreen = max(g.MaxGreen, count)
	case Blue:
		g.MaxBlue = max(g.MaxBlue, count)
	}
}

// Playable reports whether every draw of the game fits in a bag with the
// given number of cubes per color.
func (g Game) Playable(t Thresholds) bool {
	return g.MaxRed <= t.Red && g.MaxGreen <= t.Green && g.MaxBlue <= t.Blue
}

// Power is the product of the three maxima: the size of the smallest bag
// that makes the game playable, multiplied out.
func (g Game) Power() uint64 {
	return g.MaxRed * g.MaxGreen * g.MaxBlue
}

// SumPlayableIDs parses every line and adds up the IDs of the games that are
// playable against t. Malformed lines are skipped.
func SumPlayableIDs(lines []string, t Thresholds) uint64 {
	var total uint64
	for _, line := range lines {
		g, err := Parse(line)
		if err != nil {
			continue
		}
		if g.Playable(t) {
			total += g.ID
		}
	}
	return total
}

// SumPowers parses every line and adds up the game powers.
// Malformed lines are skipped.
func SumPowers(lines []string) uint64 {
	var total uint64
	for _, line := range lines {
		g, err := Parse(line)
		if err != nil {
			continue
		}
		total += g.Power()
	}
	return total
}
