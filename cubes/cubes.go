// Package cubes solves the cube game: an elf draws handfuls of red,
// green and blue cubes from a bag, and each line of input records the
// handfuls of one game.
package cubes

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023"
	"tailscale.com/util/deephash"
)

// Cubes is a count of cubes per color. It is used both for a single
// handful (a round) and for the contents of a bag.
type Cubes struct {
	Red, Green, Blue int
}

// Bag is what the elf claims the bag held for part 1.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Within reports whether c could have been drawn from a bag holding limit.
func (c Cubes) Within(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Power is the product of the three counts. ok is false if a count is
// negative or the product does not fit in a uint64.
func (c Cubes) Power() (p uint64, ok bool) {
	if c.Red < 0 || c.Green < 0 || c.Blue < 0 {
		return 0, false
	}
	var hi uint64
	hi, p = bits.Mul64(uint64(c.Red), uint64(c.Green))
	if hi != 0 {
		return 0, false
	}
	hi, p = bits.Mul64(p, uint64(c.Blue))
	return p, hi == 0
}

// String formats c the way it appears in the input, omitting colors
// with a zero count.
func (c Cubes) String() string {
	var parts []string
	for _, cc := range []struct {
		n     int
		color string
	}{
		{c.Red, "red"},
		{c.Green, "green"},
		{c.Blue, "blue"},
	} {
		if cc.n > 0 {
			parts = append(parts, strconv.Itoa(cc.n)+" "+cc.color)
		}
	}
	if len(parts) == 0 {
		return "0 red"
	}
	return strings.Join(parts, ", ")
}

// Game is one line of input.
type Game struct {
	ID     int
	Rounds []Cubes
}

// Valid reports whether every round of g fits in a bag holding limit.
func (g Game) Valid(limit Cubes) bool {
	for _, r := range g.Rounds {
		if !r.Within(limit) {
			return false
		}
	}
	return true
}

// MinCubes returns the fewest cubes of each color the bag must have
// held for every round of g to be possible.
func (g Game) MinCubes() Cubes {
	var m Cubes
	for _, r := range g.Rounds {
		m.Red = aoc.Max(m.Red, r.Red)
		m.Green = aoc.Max(m.Green, r.Green)
		m.Blue = aoc.Max(m.Blue, r.Blue)
	}
	return m
}

// String returns the canonical form of g. ParseGame(g.String()) yields
// a Game equal to g as long as g has at least one round.
func (g Game) String() string {
	rounds := make([]string, len(g.Rounds))
	for i, r := range g.Rounds {
		rounds[i] = r.String()
	}
	return fmt.Sprintf("Game %d: %s", g.ID, strings.Join(rounds, "; "))
}

var hashGame = deephash.HasherForType[Game]()

// Hash returns a hash of the structure of g.
func (g Game) Hash() deephash.Sum {
	return hashGame(&g)
}

// Part1 returns the sum of the IDs of the games possible with Bag.
func Part1(input string) (string, error) {
	games, err := ParseGames(input)
	if err != nil {
		return "", err
	}
	var ids []int
	for _, g := range games {
		if g.Valid(Bag) {
			ids = append(ids, g.ID)
		}
	}
	return strconv.Itoa(aoc.Sum(ids...)), nil
}

// Part2 returns the sum over all games of the power of their minimum
// set of cubes. Counts large enough to overflow a uint64 are reported
// as malformed input.
func Part2(input string) (string, error) {
	games, err := ParseGames(input)
	if err != nil {
		return "", err
	}
	var sum uint64
	for _, g := range games {
		m := g.MinCubes()
		p, ok := m.Power()
		if !ok {
			return "", fmt.Errorf("game %d: power of %v overflows: %w", g.ID, m, aoc.ErrMalformedInput)
		}
		var carry uint64
		sum, carry = bits.Add64(sum, p, 0)
		if carry != 0 {
			return "", fmt.Errorf("game %d: sum of powers overflows: %w", g.ID, aoc.ErrMalformedInput)
		}
	}
	return strconv.FormatUint(sum, 10), nil
}
