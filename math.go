package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digits returns the decimal digits of line in order, skipping every
// other rune.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		if d, ok := Digit(c); ok {
			in = append(in, d)
		}
	}
	return in
}

// Digit returns the digit value of the rune, and whether it is one of
// '0' through '9'.
func Digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Max returns the largest of the numbers, or the zero value if there
// are none.
func Max[T constraints.Ordered](nums ...T) T {
	var m T
	for i, v := range nums {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Lines splits input into lines, dropping the single trailing newline
// that puzzle inputs usually end with.
func Lines(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}
