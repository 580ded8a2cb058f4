// Package trebuchet recovers calibration values from lines of text.
//
// A line's calibration value is its first decimal digit followed by its
// last one, so "pqr3stu8vwx" is 38 and "treb7uchet" is 77.
package trebuchet

import (
	"fmt"
	"strconv"

	"github.com/maisem/aoc2023"
)

// Calibrate returns the calibration value of a single line.
func Calibrate(line string) (int, error) {
	ds := aoc.Digits(line)
	if len(ds) == 0 {
		return 0, fmt.Errorf("no digit in line: %w", aoc.ErrMissingValue)
	}
	return ds[0]*10 + ds[len(ds)-1], nil
}

// Process returns the sum of the calibration values of every line of
// input. A line without a digit fails the whole input.
func Process(input string) (string, error) {
	var sum int
	for i, line := range aoc.Lines(input) {
		v, err := Calibrate(line)
		if err != nil {
			return "", &aoc.ParseError{
				Line:  i + 1,
				Col:   len(line),
				Input: line,
				Msg:   "expected at least one digit",
				Err:   err,
			}
		}
		sum += v
	}
	return strconv.Itoa(sum), nil
}
