package main

import (
	_ "embed"

	"github.com/maisem/aoc2023/cubes"
	"github.com/maisem/aoc2023/trebuchet"
)

//go:embed solutions.go
var source []byte

type solver struct{}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (solver) D1p1(input string) (string, error) {
	return trebuchet.Process(input)
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (solver) D2p1(input string) (string, error) {
	return cubes.Part1(input)
}

// want=2286
func (solver) D2p2(input string) (string, error) {
	return cubes.Part2(input)
}
