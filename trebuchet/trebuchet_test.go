package trebuchet

import (
	"errors"
	"strings"
	"testing"

	"github.com/maisem/aoc2023"
)

const sample = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet`

func TestProcess(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{sample, "142"},
		{sample + "\n", "142"},
		{"", "0"},
		{"7", "77"},
		{"99", "99"},
		{"a0b", "0"},
		{"x1\n2y", "33"},
	}
	for _, tt := range tests {
		got, err := Process(tt.input)
		if err != nil {
			t.Errorf("Process(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Process(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCalibrate(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"1abc2", 12},
		{"pqr3stu8vwx", 38},
		{"a1b2c3d4e5f", 15},
		{"treb7uchet", 77},
		{"5", 55},
		{"--4--", 44},
		{"é9ü1ß", 91},
	}
	for _, tt := range tests {
		got, err := Calibrate(tt.line)
		if err != nil {
			t.Errorf("Calibrate(%q) error: %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Calibrate(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestCalibrateIgnoresNonDigits(t *testing.T) {
	for d := 0; d <= 9; d++ {
		digit := string(rune('0' + d))
		for _, noise := range []string{"", "abc", "!?", " ", "xyz\t"} {
			line := noise + digit + noise
			got, err := Calibrate(line)
			if err != nil {
				t.Fatalf("Calibrate(%q) error: %v", line, err)
			}
			if want := 11 * d; got != want {
				t.Errorf("Calibrate(%q) = %v, want %v", line, got, want)
			}
		}
	}
}

func TestProcessMissingDigit(t *testing.T) {
	tests := []struct {
		input    string
		wantLine int
	}{
		{"abc", 1},
		{"1abc2\nnodigits\n3", 2},
		{"1\n\n2", 2},
	}
	for _, tt := range tests {
		got, err := Process(tt.input)
		if !errors.Is(err, aoc.ErrMissingValue) {
			t.Errorf("Process(%q) = %q, %v; want ErrMissingValue", tt.input, got, err)
			continue
		}
		var pe *aoc.ParseError
		if !errors.As(err, &pe) || pe.Line != tt.wantLine {
			t.Errorf("Process(%q) error %v; want ParseError on line %d", tt.input, err, tt.wantLine)
			continue
		}
		if !strings.Contains(err.Error(), "no digit in line") {
			t.Errorf("Process(%q) error %q lost the cause", tt.input, err)
		}
	}
}

func TestProcessOrderIndependent(t *testing.T) {
	lines := strings.Split(sample, "\n")
	for i := range lines {
		rotated := append(append([]string{}, lines[i:]...), lines[:i]...)
		got, err := Process(strings.Join(rotated, "\n"))
		if err != nil {
			t.Fatal(err)
		}
		if got != "142" {
			t.Errorf("rotation %d: Process = %v, want 142", i, got)
		}
	}
}
