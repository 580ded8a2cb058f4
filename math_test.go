package aoc

import (
	"reflect"
	"testing"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		line string
		want []int
	}{
		{"1abc2", []int{1, 2}},
		{"a1b2c3d4e5f", []int{1, 2, 3, 4, 5}},
		{"treb7uchet", []int{7}},
		{"none", nil},
		{"", nil},
		{"٣", nil}, // only ASCII digits count
	}
	for _, tt := range tests {
		if got := Digits(tt.line); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Digits(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"\n", nil},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"a\n\n", []string{"a", ""}},
	}
	for _, tt := range tests {
		if got := Lines(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSumMax(t *testing.T) {
	if got := Sum(1, 2, 3); got != 6 {
		t.Errorf("Sum = %v, want 6", got)
	}
	if got := Sum[int](); got != 0 {
		t.Errorf("Sum() = %v, want 0", got)
	}
	if got := Max(3, 9, 2); got != 9 {
		t.Errorf("Max = %v, want 9", got)
	}
	if got := Max(-3, -9); got != -3 {
		t.Errorf("Max = %v, want -3", got)
	}
	if got := Max[int](); got != 0 {
		t.Errorf("Max() = %v, want 0", got)
	}
}
