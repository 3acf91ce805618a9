package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davidvella/pairheap/harness"
	"github.com/davidvella/pairheap/monitoring"
)

var (
	// These variables are set using -ldflags
	version string
	commit  string
	date    string
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	out  io.Writer
	conf *config
	log  *zap.Logger
	reg  *prometheus.Registry
}

// Cmd runs the command line and returns the process exit code.
func Cmd(ctx context.Context, args []string) int {
	a := &app{out: os.Stdout}
	root := a.rootCmd()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		a.fail(err)
		return 1
	}
	return 0
}

func (a *app) fail(err error) {
	if a.log == nil {
		fmt.Fprintf(a.out, "pairheap: %s\n", err)
		return
	}
	a.log.Error("command failed", zap.Error(err))
}

func (a *app) rootCmd() *cobra.Command {
	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:           "pairheap",
		Short:         "Check, time and demo a pairing heap",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.out)

	rootCmd.PersistentFlags().String("config", "", "path to a config file")
	rootCmd.PersistentFlags().Bool("json", false, "log as JSON")
	rootCmd.PersistentFlags().Bool("metrics", false, "print collected metrics after the run")
	rootCmd.PersistentFlags().Int64("seed", 1, "seed of the key generator")
	rootCmd.PersistentFlags().Int("count", 1000, "elements per trial")
	rootCmd.PersistentFlags().Int("min-key", -1_000_000, "smallest generated key")
	rootCmd.PersistentFlags().Int("max-key", 1_000_000, "largest generated key")

	rootCmd.AddCommand(a.compareCmd())
	rootCmd.AddCommand(a.stressCmd())
	rootCmd.AddCommand(a.mergeCmd())
	rootCmd.AddCommand(a.benchCmd())
	rootCmd.AddCommand(a.dijkstraCmd())
	rootCmd.AddCommand(a.versionCmd())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	conf, err := readConfig(cmd.Flags())
	if err != nil {
		return err
	}
	a.conf = conf
	if a.log == nil {
		a.log = monitoring.NewLogger(conf.JSON)
	}
	a.reg = prometheus.NewRegistry()
	return nil
}

func (a *app) teardown() error {
	if a.conf != nil && a.conf.Metrics {
		if err := monitoring.Dump(a.out, a.reg); err != nil {
			return err
		}
	}
	_ = a.log.Sync()
	return nil
}

// harness builds a harness from the resolved configuration.
func (a *app) harness() (*harness.Harness, error) {
	return harness.New(
		harness.WithSeed(a.conf.Seed),
		harness.WithCount(a.conf.Count),
		harness.WithKeyRange(a.conf.MinKey, a.conf.MaxKey),
		harness.WithPeek(a.conf.Peek),
		harness.WithRounds(a.conf.Rounds),
		harness.WithLogger(a.log),
		harness.WithStats(monitoring.NewStats(a.reg)),
	)
}
