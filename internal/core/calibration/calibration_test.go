package calibration

import (
	"strings"
	"testing"
)

var literalExample = []string{
	"1abc2",
	"pqr3stu8vwx",
	"a1b2c3d4e5f",
	"treb7uchet",
}

var spelledExample = []string{
	"two1nine",
	"eightwothree",
	"abcone2threexyz",
	"xtwone3four",
	"4nineeightseven2",
	"zoneight234",
	"7pqrstsixteen",
}

func TestValue(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		mode   Mode
		want   uint
		wantOK bool
	}{
		{name: "digits at both ends", line: "1abc2", mode: Literal, want: 12, wantOK: true},
		{name: "digits inside", line: "pqr3stu8vwx", mode: Literal, want: 38, wantOK: true},
		{name: "single digit counts twice", line: "treb7uchet", mode: Literal, want: 77, wantOK: true},
		{name: "no digit", line: "abcdef", mode: Literal, wantOK: false},
		{name: "empty line", line: "", mode: Spelled, wantOK: false},
		{name: "words ignored in literal mode", line: "two1nine", mode: Literal, want: 11, wantOK: true},
		{name: "words only in literal mode", line: "twone", mode: Literal, wantOK: false},
		{name: "words at both ends", line: "two1nine", mode: Spelled, want: 29, wantOK: true},
		{name: "overlapping first word", line: "eightwothree", mode: Spelled, want: 83, wantOK: true},
		{name: "overlapping last word", line: "twone", mode: Spelled, want: 21, wantOK: true},
		{name: "overlap hidden behind leading junk", line: "zoneight234", mode: Spelled, want: 14, wantOK: true},
		{name: "partial word is not a digit", line: "7pqrstsixteen", mode: Spelled, want: 76, wantOK: true},
		{name: "oneight alone", line: "oneight", mode: Spelled, want: 18, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Value(tt.line, tt.mode)
			if ok != tt.wantOK {
				t.Fatalf("Value(%q, %s) ok = %v, want %v", tt.line, tt.mode, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Value(%q, %s) = %d, want %d", tt.line, tt.mode, got, tt.want)
			}
		})
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		mode  Mode
		want  uint64
	}{
		{name: "literal example", lines: literalExample, mode: Literal, want: 142},
		{name: "spelled example", lines: spelledExample, mode: Spelled, want: 281},
		{name: "literal example in spelled mode", lines: literalExample, mode: Spelled, want: 142},
		{name: "lines without digits are skipped", lines: []string{"abc", "1x", "", "xyz"}, mode: Literal, want: 11},
		{name: "no lines", lines: nil, mode: Spelled, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum(tt.lines, tt.mode); got != tt.want {
				t.Errorf("Sum() = %d, want %d", got, tt.want)
			}
		})
	}
}

// naiveLiteralValue collects every digit and combines the ends.
func naiveLiteralValue(line string) (uint, bool) {
	var digits []uint
	for _, r := range line {
		if r >= '0' && r <= '9' {
			digits = append(digits, uint(r-'0'))
		}
	}
	if len(digits) == 0 {
		return 0, false
	}
	return digits[0]*10 + digits[len(digits)-1], true
}

func TestValue_LiteralMatchesNaiveScan(t *testing.T) {
	lines := append([]string{
		"0", "90", "a0b", "x9y8z7", "no digits here", "ünïcödé5ß", "12345678901234567890",
	}, literalExample...)
	lines = append(lines, spelledExample...)

	for _, line := range lines {
		want, wantOK := naiveLiteralValue(line)
		got, ok := Value(line, Literal)
		if ok != wantOK || got != want {
			t.Errorf("Value(%q, literal) = (%d, %v), naive scan = (%d, %v)", line, got, ok, want, wantOK)
		}
	}
}

func TestReplaceSpelledDigits(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "one1one", want: "111"},
		{line: "twone1one", want: "2ne11"},
		{line: "eightwothree", want: "8wo3"},
		{line: "abc", want: "abc"},
		{line: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := ReplaceSpelledDigits(tt.line); got != tt.want {
				t.Errorf("ReplaceSpelledDigits(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestReplaceSpelledDigitsFromRight(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "one1one", want: "111"},
		{line: "twone1one", want: "tw111"},
		{line: "eightwothree", want: "eigh23"},
		{line: "abc", want: "abc"},
		{line: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := ReplaceSpelledDigitsFromRight(tt.line); got != tt.want {
				t.Errorf("ReplaceSpelledDigitsFromRight(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestSubstitutionsAgreeWithDirectSearch(t *testing.T) {
	for _, line := range append([]string{"twone1one", "oneight", "sevenine"}, spelledExample...) {
		first, _ := FirstDigit(ReplaceSpelledDigits(line), Literal)
		last, _ := LastDigit(ReplaceSpelledDigitsFromRight(line), Literal)

		wantFirst, _ := FirstDigit(line, Spelled)
		wantLast, _ := LastDigit(line, Spelled)

		if first != wantFirst {
			t.Errorf("%q: first digit after forward pass = %d, want %d", line, first, wantFirst)
		}
		if last != wantLast {
			t.Errorf("%q: last digit after backward pass = %d, want %d", line, last, wantLast)
		}
	}
}

func TestTwoneForwardAndBackward(t *testing.T) {
	first, ok := FirstDigit(ReplaceSpelledDigits("twone1one"), Literal)
	if !ok || first != 2 {
		t.Errorf("forward first digit = (%d, %v), want (2, true)", first, ok)
	}
	last, ok := LastDigit(ReplaceSpelledDigitsFromRight("twone1one"), Literal)
	if !ok || last != 1 {
		t.Errorf("backward last digit = (%d, %v), want (1, true)", last, ok)
	}
}

func TestWordValuePanicsOnUnknownWord(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("wordValue(\"ten\") did not panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "logic error") {
			t.Errorf("panic = %v, want logic error", r)
		}
	}()
	wordValue("ten")
}

func TestModeString(t *testing.T) {
	if got := Literal.String(); got != "literal" {
		t.Errorf("Literal.String() = %q", got)
	}
	if got := Spelled.String(); got != "spelled" {
		t.Errorf("Spelled.String() = %q", got)
	}
	if got := Mode(7).String(); got != "Mode(7)" {
		t.Errorf("Mode(7).String() = %q", got)
	}
}
