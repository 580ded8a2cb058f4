// Package aoc is a small harness for running Advent of Code solvers
// against the samples embedded in their doc comments and then against
// the real puzzle input. (forked from maisem/aoc)
package aoc

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"tailscale.com/types/logger"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// funcs in src, keyed by func name. A sample with only a want= line
// reuses the input of the previous sample.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solutions.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// SolverFunc is the signature of a single puzzle part: it consumes the
// whole puzzle input and returns the answer.
type SolverFunc func(input string) (string, error)

// puzzle is the state of one day while it is being run.
type puzzle struct {
	year       int
	day        day
	cacheDir   string
	sampleMode bool

	solver  partSolver
	samples map[string]sample
}

// input returns the sample input in sample mode, and the real input
// otherwise.
func (p *puzzle) input() []byte {
	if p.sampleMode {
		return []byte(p.sample().input)
	}
	return fileOrFetch(
		inputPath(p.cacheDir, p.year, p.day.day),
		fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day),
	)
}

func (p *puzzle) sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return s
}

func (p *puzzle) hasSample() bool {
	_, ok := p.samples[p.solver.Name]
	return ok
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   SolverFunc
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part} with the
// signature of SolverFunc, grouped by day and sorted by part.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if reflect.Indirect(v).Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want struct or pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		fn, ok := v.Method(i).Interface().(func(string) (string, error))
		if !ok {
			return nil, fmt.Errorf("method %s has type %v; want func(string) (string, error)", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// Options controls a Run.
type Options struct {
	// Day to run. Zero or negative runs every registered day.
	Day int
	// Part to run within each day. Empty runs all parts.
	Part string

	OnlySample bool
	SkipSample bool

	// CacheDir is where real inputs are read from and fetched into.
	CacheDir string

	// Out receives the answers. Defaults to os.Stdout.
	Out io.Writer
	// Logf receives timings and diagnostics. Defaults to logger.Discard.
	Logf logger.Logf
}

// ErrSampleMismatch is returned by Run when a solver's answer for its
// embedded sample differs from the want= line.
var ErrSampleMismatch = errors.New("sample answer mismatch")

func (o Options) runDay(year int, day day, samples map[string]sample) error {
	p := puzzle{
		year:     year,
		day:      day,
		cacheDir: o.CacheDir,
		samples:  samples,
	}
	fmt.Fprintln(o.Out, "Running day", day.day)
	for _, ps := range day.parts {
		p.solver = ps
		if o.Part != "" && ps.Part != o.Part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && o.OnlySample {
				continue
			} else if sm && o.SkipSample {
				continue
			}
			if sm && !p.hasSample() {
				o.Logf("%s: no sample, skipping", ps.Name)
				continue
			}
			p.sampleMode = sm
			input := string(p.input())
			t0 := time.Now()
			got, err := ps.fn(input)
			took := time.Since(t0).Round(time.Microsecond)
			o.Logf("%s sample=%v took %v", ps.Name, sm, took)
			if err != nil {
				fmt.Fprintf(o.Out, "part %s: error: %v\n", ps.Part, err)
				return fmt.Errorf("day %d part %s: %w", day.day, ps.Part, err)
			}
			if sm {
				want := p.sample().want
				if got != want {
					fmt.Fprintf(o.Out, "part %s: %v ❌; want %v\n", ps.Part, got, want)
					return fmt.Errorf("day %d part %s: got %s, want %s: %w", day.day, ps.Part, got, want, ErrSampleMismatch)
				}
				fmt.Fprintf(o.Out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
			} else {
				fmt.Fprintf(o.Out, "part %s: %v (took %v) \n", ps.Part, got, took)
			}
		}
	}
	return nil
}

// Run runs the D{day}p{part} methods of slvr for the given year. src is
// the source of the file declaring those methods; the samples are read
// from their doc comments, in the form:
//
//	/*
//	want=142
//
//	1abc2
//	treb7uchet
//	*/
func Run(year int, src []byte, slvr any, o Options) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Logf == nil {
		o.Logf = logger.Discard
	}

	if o.Day > 0 {
		day, ok := days[o.Day]
		if !ok {
			return fmt.Errorf("no day %d", o.Day)
		}
		return o.runDay(year, day, samples)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		if err := o.runDay(year, days[d], samples); err != nil {
			return err
		}
		fmt.Fprintln(o.Out)
	}
	return nil
}

// Lookup returns the solver for one day and part of slvr.
func Lookup(slvr any, dayNum int, part string) (SolverFunc, error) {
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	d, ok := days[dayNum]
	if !ok {
		return nil, fmt.Errorf("no day %d", dayNum)
	}
	for _, ps := range d.parts {
		if ps.Part == part {
			return ps.fn, nil
		}
	}
	return nil, fmt.Errorf("no part %q for day %d", part, dayNum)
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
