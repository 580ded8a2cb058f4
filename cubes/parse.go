package cubes

import (
	"errors"
	"fmt"

	"github.com/maisem/aoc2023"
	"go4.org/mem"
)

// ErrUnknownColor is wrapped by the error for a color other than red,
// green or blue.
var ErrUnknownColor = fmt.Errorf("unknown color: %w", aoc.ErrMalformedInput)

// ParseGames parses one game per line. The first bad line fails the
// whole input.
func ParseGames(input string) ([]Game, error) {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return nil, &aoc.ParseError{
			Line: 1,
			Msg:  "expected at least one game",
			Err:  aoc.ErrMalformedInput,
		}
	}
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			var pe *aoc.ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// ParseGame parses a line of the form
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// A color missing from a round counts as zero. A color repeated within
// a round keeps its last count.
func ParseGame(line string) (Game, error) {
	p := &parser{line: mem.S(line), rest: mem.S(line)}
	return p.game()
}

type parser struct {
	line mem.RO
	rest mem.RO
}

func (p *parser) errorf(err error, format string, args ...any) error {
	return &aoc.ParseError{
		Line:  1,
		Col:   p.line.Len() - p.rest.Len(),
		Input: p.line.StringCopy(),
		Msg:   fmt.Sprintf(format, args...),
		Err:   err,
	}
}

// game = "Game " number ": " rounds EOL
func (p *parser) game() (Game, error) {
	if err := p.literal("Game "); err != nil {
		return Game{}, err
	}
	id, err := p.number()
	if err != nil {
		return Game{}, err
	}
	if err := p.literal(": "); err != nil {
		return Game{}, err
	}
	g := Game{ID: id}
	for {
		r, err := p.round()
		if err != nil {
			return Game{}, err
		}
		g.Rounds = append(g.Rounds, r)
		if !p.accept("; ") {
			break
		}
	}
	if p.rest.Len() != 0 {
		return Game{}, p.errorf(aoc.ErrMalformedInput, "unexpected trailing text")
	}
	return g, nil
}

// round = number " " color { ", " number " " color }
func (p *parser) round() (Cubes, error) {
	var c Cubes
	for {
		n, err := p.number()
		if err != nil {
			return c, err
		}
		if err := p.literal(" "); err != nil {
			return c, err
		}
		start := p.rest
		w, err := p.word()
		if err != nil {
			return c, err
		}
		switch {
		case w.EqualString("red"):
			c.Red = n
		case w.EqualString("green"):
			c.Green = n
		case w.EqualString("blue"):
			c.Blue = n
		default:
			p.rest = start
			return c, p.errorf(ErrUnknownColor, "unknown color %q", w.StringCopy())
		}
		if !p.accept(", ") {
			return c, nil
		}
	}
}

func (p *parser) accept(s string) bool {
	if !mem.HasPrefix(p.rest, mem.S(s)) {
		return false
	}
	p.rest = p.rest.SliceFrom(len(s))
	return true
}

func (p *parser) literal(s string) error {
	if !p.accept(s) {
		return p.errorf(aoc.ErrMalformedInput, "expected %q", s)
	}
	return nil
}

// number consumes a non-empty run of decimal digits.
func (p *parser) number() (int, error) {
	n := p.span(func(b byte) bool { return b >= '0' && b <= '9' })
	if n == 0 {
		return 0, p.errorf(aoc.ErrMalformedInput, "expected number")
	}
	v, err := mem.ParseUint(p.rest.SliceTo(n), 10, 32)
	if err != nil {
		return 0, p.errorf(aoc.ErrMalformedInput, "bad number: %v", err)
	}
	p.rest = p.rest.SliceFrom(n)
	return int(v), nil
}

// word consumes a non-empty run of ASCII letters.
func (p *parser) word() (mem.RO, error) {
	n := p.span(func(b byte) bool { return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' })
	if n == 0 {
		return mem.RO{}, p.errorf(aoc.ErrMalformedInput, "expected color")
	}
	w := p.rest.SliceTo(n)
	p.rest = p.rest.SliceFrom(n)
	return w, nil
}

// span returns the length of the prefix of p.rest whose bytes satisfy f.
func (p *parser) span(f func(byte) bool) int {
	n := 0
	for n < p.rest.Len() && f(p.rest.At(n)) {
		n++
	}
	return n
}
