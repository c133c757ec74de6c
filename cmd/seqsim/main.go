// Command seqsim drives the "1011" sequence detectors from the command
// line: feed literal bit streams to either machine, run YAML testbench
// vector files, or compare the Mealy and Moore traces side by side.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/synbit/seqsim/bench"
	"github.com/synbit/seqsim/detect"
)

var (
	machine string
	resetAt int
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seqsim",
	Short: "simulate the 1011 sequence detectors",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var runCmd = &cobra.Command{
	Use:   "run <bits>",
	Short: "feed a bit stream to one machine and print the signal trace",
	Long: `The run command drives a literal bit stream like 1011011 into the
selected detector, one bit per clock tick, and prints the per-tick
signal trace: input, current state and the detected output. With
--reset-at N the synchronous reset is asserted on tick N.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		step, moore, err := stepFor(machine)
		if err != nil {
			return err
		}
		bits, err := detect.ParseStream(args[0])
		if err != nil {
			return err
		}

		fmt.Println("tick  in  reset  state    detected")
		st := detect.Reset()
		for i, b := range bits {
			next, detected := step(st, b)
			rst := resetAt == i
			if rst {
				next = detect.Reset()
			}
			fmt.Printf("%4d  %2s  %5s  %-8s %s\n", i, bit(b), bit(rst), st, bit(detected))
			st = next
		}
		if moore {
			// the registered output needs one more tick to show a match
			// ending on the last input bit
			fmt.Printf("%4d   -      -  %-8s %s\n", len(bits), st, bit(detect.MooreOutput(st)))
		}
		return nil
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench <file.yaml>",
	Short: "run a testbench vector file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suite, err := bench.Load(args[0])
		if err != nil {
			return err
		}
		results, err := bench.NewRunner(logger).Run(suite)
		if err != nil {
			return err
		}
		failed := 0
		for _, r := range results {
			if !r.Pass {
				failed++
			}
		}
		fmt.Printf("%s: %d vectors, %d failed\n", suite.Name, len(results), failed)
		if failed > 0 {
			return errors.Errorf("%d of %d vectors failed", failed, len(results))
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <bits>",
	Short: "print aligned Mealy and Moore traces for a bit stream",
	Long: `The compare command runs both machines over the same stream and
prints the aligned traces. The Moore trace is one sample longer and
detects one tick later than the Mealy trace.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mealy, err := detect.MealyTrace(args[0])
		if err != nil {
			return err
		}
		moore, err := detect.MooreTrace(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("stream  %s\n", args[0])
		fmt.Printf("mealy   %s\n", bench.FormatTrace(mealy))
		fmt.Printf("moore   %s\n", bench.FormatTrace(moore))
		fmt.Printf("detections: mealy=%d moore=%d\n", count(mealy), count(moore))
		return nil
	},
}

func stepFor(machine string) (func(detect.State, bool) (detect.State, bool), bool, error) {
	switch machine {
	case bench.MachineMealy:
		return detect.MealyStep, false, nil
	case bench.MachineMoore:
		return detect.MooreStep, true, nil
	}
	return nil, false, errors.Errorf("unknown machine %q (want %s or %s)", machine, bench.MachineMealy, bench.MachineMoore)
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func count(trace []bool) int {
	n := 0
	for _, b := range trace {
		if b {
			n++
		}
	}
	return n
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable per-tick debug logging")
	runCmd.Flags().StringVarP(&machine, "machine", "m", bench.MachineMealy, "machine to simulate (mealy or moore)")
	runCmd.Flags().IntVar(&resetAt, "reset-at", -1, "assert the synchronous reset on the given tick")
	rootCmd.AddCommand(runCmd, benchCmd, compareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
