// The aoc2023 command runs the Advent of Code 2023 solvers.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"tailscale.com/types/logger"

	"github.com/maisem/aoc2023"
)

const year = 2023

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "aoc2023",
		Short:        "Advent of Code 2023 solvers",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(os.Stderr, debug)
			if err := godotenv.Load(); err != nil {
				log.Debug().Msg("no .env file found")
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newRunCmd(), newSolveCmd())
	return cmd
}

func setupLogging(w io.Writer, debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// logf adapts the global zerolog logger to a logger.Logf at debug level.
func logf() logger.Logf {
	return func(format string, args ...any) {
		log.Debug().Msgf(format, args...)
	}
}

func newRunCmd() *cobra.Command {
	var o aoc.Options

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Check each solver against its sample, then solve the real input",
		Long: `Run checks every solver against the sample in its doc comment and then
runs it on the real input. Inputs are read from the cache directory, or
fetched from adventofcode.com using the session cookie in $AOC_SESSION
(or ~/keys/aoc.session) and cached there.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o.Out = cmd.OutOrStdout()
			o.Logf = logf()
			return aoc.Run(year, source, solver{}, o)
		},
	}
	cmd.Flags().IntVar(&o.Day, "day", 0, "day to run; 0 runs all days")
	cmd.Flags().StringVar(&o.Part, "part", "", "part to run")
	cmd.Flags().BoolVar(&o.OnlySample, "sample", false, "only run samples")
	cmd.Flags().BoolVar(&o.SkipSample, "skip-sample", false, "skip samples")
	cmd.Flags().StringVar(&o.CacheDir, "cache", ".", "directory holding <year>/<day>.input files")
	cmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")
	return cmd
}

func newSolveCmd() *cobra.Command {
	var (
		day  int
		part string
	)

	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Solve one part for the input in FILE, or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := aoc.Lookup(solver{}, day, part)
			if err != nil {
				return err
			}
			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			t0 := time.Now()
			got, err := fn(string(input))
			log.Debug().
				Int("day", day).
				Str("part", part).
				Dur("took", time.Since(t0)).
				Msg("solved")
			if err != nil {
				return fmt.Errorf("day %d part %s: %w", day, part, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	}
	cmd.Flags().IntVar(&day, "day", 0, "day to solve")
	cmd.Flags().StringVar(&part, "part", "1", "part to solve")
	_ = cmd.MarkFlagRequired("day")
	return cmd
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}
