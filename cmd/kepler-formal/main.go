// Command kepler-formal checks combinational equivalence between two
// gate-level netlists.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nanocoh/kepler-formal/internal/config"
	internallog "github.com/nanocoh/kepler-formal/internal/log"
	"github.com/nanocoh/kepler-formal/pkg/diag"
	"github.com/nanocoh/kepler-formal/pkg/equiv"
	"github.com/nanocoh/kepler-formal/pkg/netlist"
)

// Exit codes: 0 equivalent, 1 different (or not comparable), 2 internal
// error.
const (
	exitEquivalent = 0
	exitDifferent  = 1
	exitInternal   = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	exitCode := exitInternal

	var (
		debug      bool
		configPath string
		prefix     string
		timeout    time.Duration
	)

	root := &cobra.Command{
		Use:   "kepler-formal",
		Short: "kepler-formal",
		Long:  "kepler-formal checks combinational equivalence between two gate-level netlists.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			internallog.SetDebug(debug)
			return nil
		},
	}
	// Accept underscore spellings (--sat_timeout style) for every flag.
	root.PersistentFlags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file")

	checkCmd := &cobra.Command{
		Use:   "check <netlist0> <netlist1>",
		Short: "check combinational equivalence of two netlists",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runCheck(args[0], args[1], prefix, timeout, configPath, debug)
			exitCode = code
			return err
		},
	}
	checkCmd.Flags().StringVar(&prefix, "prefix", "", "diagnostic artifact filename prefix (written only on a SAT/different verdict)")
	checkCmd.Flags().DurationVar(&timeout, "timeout", 0, "SAT solve deadline (0 = config default)")
	root.AddCommand(checkCmd)

	root.SilenceUsage = true
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInternal
	}
	return exitCode
}

func runCheck(path0, path1, prefix string, timeout time.Duration, configPath string, debug bool) (int, error) {
	logger := internallog.New("cli", debug)

	cfg, err := config.Load(configPath)
	if err != nil {
		return exitInternal, err
	}
	if timeout == 0 {
		timeout = cfg.SATTimeout
	}

	d0, err := loadDesign(path0)
	if err != nil {
		return exitInternal, err
	}
	d1, err := loadDesign(path1)
	if err != nil {
		return exitInternal, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	db := netlist.NewDB()
	checker := equiv.NewChecker(cfg.WorkerPoolSize, 0, cfg.ArityCeiling)

	v, err := checker.Check(ctx, db, d0, d1)
	if err != nil {
		return exitInternal, err
	}

	logger.WithField("result", v.Result.String()).Info("equivalence check complete")
	if len(v.UnmatchedA) > 0 {
		logger.WithField("outputs", v.UnmatchedA).Warn("primary outputs present only in netlist0")
	}
	if len(v.UnmatchedB) > 0 {
		logger.WithField("outputs", v.UnmatchedB).Warn("primary outputs present only in netlist1")
	}
	if len(v.UnknownOutputs) > 0 {
		logger.WithField("outputs", v.UnknownOutputs).Warn("outputs degraded to unknown during cone extraction")
	}

	switch v.Result {
	case equiv.ResultEquivalent:
		fmt.Println("equivalent")
		return exitEquivalent, nil
	default:
		fmt.Printf("%s: %v\n", v.Result, v.FailingOutputs)
		if prefix != "" {
			writeDiagnostics(logger, prefix, v)
		}
		return exitDifferent, nil
	}
}

// writeDiagnostics emits one .dot artifact per failing output per side;
// failures to write one are logged, not fatal to the check's own verdict.
func writeDiagnostics(logger logrus.FieldLogger, prefix string, v equiv.Verdict) {
	for i, p := range v.FailingPairs {
		if path, err := diag.WriteFile(prefix, p.Path, i, 0, p.A); err != nil {
			logger.WithError(err).Warn("failed to write diagnostic artifact")
		} else {
			logger.WithField("path", path).Info("wrote diagnostic artifact")
		}
		if path, err := diag.WriteFile(prefix, p.Path, i, 1, p.B); err != nil {
			logger.WithError(err).Warn("failed to write diagnostic artifact")
		} else {
			logger.WithField("path", path).Info("wrote diagnostic artifact")
		}
	}
}
