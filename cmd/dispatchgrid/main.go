// Command dispatchgrid runs the warehouse dispatch simulation described by a
// YAML config file for a fixed number of ticks, then prints end-of-run
// analytics (spec.md §6.1).
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvlath-sim/dispatchgrid/auction"
	"github.com/lvlath-sim/dispatchgrid/broker"
	"github.com/lvlath-sim/dispatchgrid/config"
	"github.com/lvlath-sim/dispatchgrid/engine"
	"github.com/lvlath-sim/dispatchgrid/metrics"
	"github.com/lvlath-sim/dispatchgrid/render"
	"github.com/lvlath-sim/dispatchgrid/simlog"
)

// Exit codes (spec.md §6.1).
const (
	exitOK            = 0
	exitConfigError   = 1
	exitIllegalIntent = 2
	exitUnknownStrat  = 3
)

var (
	rounds      int
	display     bool
	selfishness bool
	seed        int64
	logPath     string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dispatchgrid config_file",
		Short: "Run the warehouse dispatch simulation from a YAML config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVar(&rounds, "rounds", 100, "number of ticks to run")
	cmd.Flags().BoolVar(&display, "display", false, "render the grid after each tick")
	cmd.Flags().BoolVar(&selfishness, "selfishness", false, "reserved: propagated to agent construction, no policy effect yet")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for the run's single PRNG")
	cmd.Flags().StringVar(&logPath, "log", "./dispatch.log", "per-run log file path")
	return cmd
}

func run(configFile string) error {
	raw, err := config.Load(configFile)
	if err != nil {
		return exitError{code: exitConfigError, err: err}
	}
	result, err := config.Build(raw)
	if err != nil {
		return exitError{code: exitCodeForConfigError(err), err: err}
	}

	lg, err := simlog.Open(logPath)
	if err != nil {
		return exitError{code: exitConfigError, err: err}
	}
	defer lg.Close()

	var brk *broker.Broker
	if result.UseAuction {
		auctionAgents := make([]*auction.Agent, 0, len(result.Agents))
		for _, ra := range result.Agents {
			auctionAgents = append(auctionAgents, auction.NewAgent(ra.ID, selfishness))
		}
		brk = broker.New(auctionAgents)
	}

	proposers := make([]engine.Proposer, len(result.Agents))
	for i, ra := range result.Agents {
		proposers[i] = ra
	}
	eng := engine.New(result.Grid, result.Factory, brk, proposers, rand.New(rand.NewSource(seed)))
	board := render.GridBoard{Grid: result.Grid}

	for i := 0; i < rounds; i++ {
		if err := eng.Tick(); err != nil {
			lg.Errorf("tick %d: %v", i, err)
			return exitError{code: exitIllegalIntent, err: err}
		}
		lg.Tick(i, 0, 0, 0)
		if display {
			if err := render.Write(os.Stdout, board); err != nil {
				return err
			}
		}
	}

	report := metrics.Collect(result.Grid)
	return report.Write(os.Stdout)
}

// exitError tags an error with the exit code run should produce for it.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	var ee exitError
	if asExitError(err, &ee) {
		return ee.code
	}
	fmt.Fprintln(os.Stderr, err)
	return exitConfigError
}

func asExitError(err error, target *exitError) bool {
	ee, ok := err.(exitError)
	if ok {
		*target = ee
	}
	return ok
}

// exitCodeForConfigError distinguishes an unknown-strategy config error
// (exit 3) from every other config error (exit 1).
func exitCodeForConfigError(err error) int {
	if ce, ok := err.(config.ConfigError); ok && ce.Field == "strategy" {
		return exitUnknownStrat
	}
	return exitConfigError
}
