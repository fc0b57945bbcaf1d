// meltmix is the command-line front of the blend formulation engine:
// it reads YAML material/spec/heat files, solves the requested blend and
// prints the compliance tables.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/meltmix/blend"
)

var (
	// Persistent flags.
	materialsPath string
	verbose       bool

	logger *zap.Logger
)

// errInfeasible marks a solve that produced a best-effort point instead of
// a compliant blend. The process exits with code 2 so schedulers can tell
// "no feasible charge" apart from operational failures.
var errInfeasible = errors.New("formulation is infeasible")

var rootCmd = &cobra.Command{
	Use:   "meltmix",
	Short: "Charge design and correction additions for metal melting",
	Long: `meltmix formulates minimum-cost material blends for a melt shop.

charge   designs a full batch from scratch: which materials, how much of
         each, hitting the chemistry spec at the target weight.
correct  computes the cheapest additions that pull an in-progress heat
         back inside its chemistry spec.

Inputs are YAML files; chemistry values in them are percents (0.35 or
"0.35%"). When no compliant blend exists the closest achievable one is
printed instead and the exit code is 2.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		if logger, err = cfg.Build(); err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&materialsPath, "materials", "m", "materials.yaml", "material catalog YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level solver logging")
	rootCmd.AddCommand(chargeCmd, correctCmd)
}

// solveOptions is shared by both subcommands.
func solveOptions() *blend.Options {
	return &blend.Options{Logger: logger}
}

func main() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	switch {
	case err == nil:
	case errors.Is(err, errInfeasible):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "meltmix: %v\n", err)
		os.Exit(1)
	}
}
