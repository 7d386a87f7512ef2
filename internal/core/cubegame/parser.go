package cubegame

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes why a record line does not match the grammar
//
//	game       := "Game" WS+ number ":" group_list
//	group_list := group (("," | ";") group)*
//	group      := WS* number WS+ color
//	color      := "red" | "green" | "blue"
type ParseError struct {
	Line   string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid game record at offset %d: %s", e.Offset, e.Reason)
}

// Parse parses one record line into a Game, keeping the largest count seen
// for each color. Spaces and tabs may precede each count, separate a count
// from its color and trail the last color. The id is followed directly by
// ":" and each color directly by "," or ";". Anything else is an error.
func Parse(line string) (Game, error) {
	p := &parser{src: line}
	g, err := p.game()
	if err != nil {
		return Game{}, err
	}
	return g, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) fail(format string, args ...any) error {
	return &ParseError{Line: p.src, Offset: p.pos, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

// spaces skips blanks and returns how many were skipped.
func (p *parser) spaces() int {
	start := p.pos
	for !p.eof() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
	return p.pos - start
}

func (p *parser) keyword(kw string) bool {
	if strings.HasPrefix(p.src[p.pos:], kw) {
		p.pos += len(kw)
		return true
	}
	return false
}

func (p *parser) number() (uint64, error) {
	start := p.pos
	for !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, p.fail("expected number")
	}
	digits := p.src[start:p.pos]
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		p.pos = start
		return 0, p.fail("number %s out of range", digits)
	}
	return n, nil
}

func (p *parser) color() (Color, error) {
	switch {
	case p.keyword("red"):
		return Red, nil
	case p.keyword("green"):
		return Green, nil
	case p.keyword("blue"):
		return Blue, nil
	}
	return 0, p.fail("expected red, green or blue")
}

func (p *parser) game() (Game, error) {
	var g Game
	if !p.keyword("Game") {
		return g, p.fail(`expected "Game"`)
	}
	if p.spaces() == 0 {
		return g, p.fail("expected space after \"Game\"")
	}
	id, err := p.number()
	if err != nil {
		return g, err
	}
	g.ID = id
	if !p.keyword(":") {
		return g, p.fail(`expected ":"`)
	}
	if err := p.groupList(&g); err != nil {
		return g, err
	}
	p.spaces()
	if !p.eof() {
		return g, p.fail("unexpected %q", p.src[p.pos:])
	}
	return g, nil
}

func (p *parser) groupList(g *Game) error {
	for {
		c, n, err := p.group()
		if err != nil {
			return err
		}
		g.observe(c, n)

		if !p.keyword(",") && !p.keyword(";") {
			return nil
		}
	}
}

func (p *parser) group() (Color, uint64, error) {
	p.spaces()
	n, err := p.number()
	if err != nil {
		return 0, 0, err
	}
	if p.spaces() == 0 {
		return 0, 0, p.fail("expected space before color")
	}
	c, err := p.color()
	if err != nil {
		return 0, 0, err
	}
	return c, n, nil
}
