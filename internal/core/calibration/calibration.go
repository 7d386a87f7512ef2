// Package calibration contains the pure business logic for recovering
// calibration values from lines of text.
// This is part of the Functional Core - no I/O, only pure functions.
package calibration

import "fmt"

// Mode selects which digit occurrences count when scanning a line.
type Mode int

const (
	// Literal counts ASCII digit characters only.
	Literal Mode = iota
	// Spelled counts ASCII digits and the words "one" through "nine".
	Spelled
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Literal:
		return "literal"
	case Spelled:
		return "spelled"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// digitWords is indexed by digit value; index 0 is unused.
var digitWords = [...]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// wordValue maps a spelled-out digit to its value.
// Panics for anything outside the nine known words.
func wordValue(word string) uint {
	switch word {
	case "one":
		return 1
	case "two":
		return 2
	case "three":
		return 3
	case "four":
		return 4
	case "five":
		return 5
	case "six":
		return 6
	case "seven":
		return 7
	case "eight":
		return 8
	case "nine":
		return 9
	}
	panic(fmt.Sprintf("logic error: %q is not a digit word", word))
}

// digitAt reports the digit occurrence starting at offset i, if any.
// It returns the digit value and the byte length of the occurrence.
func digitAt(line string, i int, mode Mode) (uint, int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return uint(c - '0'), 1, true
	}
	if mode != Spelled {
		return 0, 0, false
	}
	return spelledAt(line, i)
}

// FirstDigit returns the leftmost digit occurrence in line.
func FirstDigit(line string, mode Mode) (uint, bool) {
	for i := 0; i < len(line); i++ {
		if d, _, ok := digitAt(line, i, mode); ok {
			return d, true
		}
	}
	return 0, false
}

// LastDigit returns the rightmost digit occurrence in line.
// Occurrences are tried from the last offset backwards, so a word that
// overlaps an earlier one ("twone") is still found.
func LastDigit(line string, mode Mode) (uint, bool) {
	for i := len(line) - 1; i >= 0; i-- {
		if d, _, ok := digitAt(line, i, mode); ok {
			return d, true
		}
	}
	return 0, false
}

// Value combines the first and last digit of line into a two-digit number.
// Returns false when the line holds no digit at all.
func Value(line string, mode Mode) (uint, bool) {
	first, ok := FirstDigit(line, mode)
	if !ok {
		return 0, false
	}
	last, _ := LastDigit(line, mode)
	return first*10 + last, true
}

// Sum adds up the values of every line that holds at least one digit.
func Sum(lines []string, mode Mode) uint64 {
	var total uint64
	for _, line := range lines {
		if v, ok := Value(line, mode); ok {
			total += uint64(v)
		}
	}
	return total
}
