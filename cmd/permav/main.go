// SPDX-License-Identifier: MIT

// Command permav inspects permutation patterns and enumerates avoidance
// classes from the command line.
//
//	permav contains 201 530421
//	permav occurrences 201 530421
//	permav enumerate 120 "012_210" --max-length 7
//	permav sample 2031_1302 --length 8 --count 3 --seed 1
//	permav basis 0123 012 210
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/permav/avoidance"
	"github.com/katalvlaran/permav/perm"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfgPath   string
	verbose   bool
	unchecked bool

	cfg    Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "permav",
		Short: "Permutation patterns and avoidance classes",
		Long: `permav finds pattern occurrences in permutations and enumerates the
classes of permutations avoiding a basis of patterns.

Permutations are written as digit runs ("530421") or separated
integers ("5,3,0,4,2,1"). Bases are digit runs separated by anything
("012_210", "123, 321"); every run is standardized.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.unchecked, "unchecked", false, "skip permutation validation")

	root.AddCommand(
		a.containsCmd(),
		a.occurrencesCmd(),
		a.enumerateCmd(),
		a.sampleCmd(),
		a.basisCmd(),
	)

	return root
}

// setup loads configuration, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("unchecked") {
		cfg.Unchecked = a.unchecked
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg
	perm.SetValidation(!cfg.Unchecked)

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("permav: log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("permav: initialize logger: %w", err)
	}
	a.logger = logger
	avoidance.SetLogger(logger)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
