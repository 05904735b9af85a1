// Command aoc24 runs Advent of Code 2024 solutions.
//
// Usage:
//
//	aoc24 [day] [--input PATH] [--timing] [--log-level LEVEL]
//
// Without a day, every implemented day is run against inputs/day<N>.txt.
// Flags can also be set from the environment (AOC_TIMING, AOC_LOG_LEVEL,
// AOC_INPUT, AOC_INPUTS_DIR) or a .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iainlane/aoc24"
	"github.com/iainlane/aoc24/solutions"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "aoc24 [day]",
		Short:         "Run Advent of Code 2024 solutions",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, stdout, stderr, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.String("log-level", "warn", "log level (off, error, warn, info, debug, trace)")
	f.Bool("timing", false, "show timing information")
	f.String("input", "", "input file (defaults to inputs/day<N>.txt); needs a day")
	f.String("inputs-dir", aoc.DefaultInputDir, "directory holding day<N>.txt inputs")

	cobra.CheckErr(v.BindPFlags(f))
	v.SetEnvPrefix("AOC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

func run(v *viper.Viper, stdout, stderr io.Writer, args []string) error {
	level, err := parseLogLevel(v.GetString("log-level"))
	if err != nil {
		return err
	}
	setupLogger(stderr, level)
	log.Trace().Msg("enabled trace logging")
	log.Debug().Msg("enabled debug logging")
	log.Info().Msg("enabled info logging")

	timing := v.GetBool("timing")
	input := v.GetString("input")
	reg := solutions.Registry(
		aoc.WithOutput(stdout),
		aoc.WithInputDir(v.GetString("inputs-dir")),
	)
	log.Debug().Ints("days", reg.AvailableDays()).Msg("registered days")

	if len(args) == 0 {
		if input != "" {
			log.Warn().Str("input", input).Msg("--input is ignored without a day")
		}
		return reg.RunAll(timing)
	}

	day, err := strconv.ParseUint(args[0], 10, 31)
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", args[0], err)
	}
	if _, err := fmt.Fprintf(stdout, "Running day %d\n", day); err != nil {
		return err
	}
	return reg.RunDayFile(int(day), input, timing)
}
