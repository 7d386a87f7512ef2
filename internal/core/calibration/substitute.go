package calibration

import (
	"strconv"
	"strings"
)

// ReplaceSpelledDigits rewrites spelled-out digits as numerals in a single
// left-to-right, non-overlapping pass: "twone1one" becomes "2ne11".
// The first digit of the result is the first digit of the line; the last one
// may not be, because overlapping words are consumed by the earlier match.
func ReplaceSpelledDigits(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); {
		if d, n, ok := spelledAt(line, i); ok {
			b.WriteString(strconv.Itoa(int(d)))
			i += n
			continue
		}
		b.WriteByte(line[i])
		i++
	}
	return b.String()
}

// ReplaceSpelledDigitsFromRight rewrites spelled-out digits in a single
// right-to-left, non-overlapping pass: "twone1one" becomes "tw111".
// The last digit of the result is the last digit of the line.
func ReplaceSpelledDigitsFromRight(line string) string {
	out := make([]string, 0, len(line))
	for end := len(line); end > 0; {
		if d, n, ok := spelledEndingAt(line, end); ok {
			out = append(out, strconv.Itoa(int(d)))
			end -= n
			continue
		}
		out = append(out, line[end-1:end])
		end--
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return strings.Join(out, "")
}

func spelledAt(line string, i int) (uint, int, bool) {
	rest := line[i:]
	for _, w := range digitWords[1:] {
		if strings.HasPrefix(rest, w) {
			return wordValue(w), len(w), true
		}
	}
	return 0, 0, false
}

func spelledEndingAt(line string, end int) (uint, int, bool) {
	head := line[:end]
	for _, w := range digitWords[1:] {
		if strings.HasSuffix(head, w) {
			return wordValue(w), len(w), true
		}
	}
	return 0, 0, false
}
