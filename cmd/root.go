package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	sim "github.com/loadsim/loadsim/sim"
)

var (
	// CLI flags for the simulation run
	seed            int64   // Seed for random request generation
	ticks           int64   // Total simulation horizon (in ticks)
	logLevel        string  // Log verbosity level
	serverCount     int     // Number of servers in the pool
	policyName      string  // Active scheduling policy
	arrivalRate     float64 // Request arrivals per tick
	historyCapacity int     // Balance history buffer capacity
	durationMin     int64   // Service duration lower bound (exclusive)
	durationMax     int64   // Service duration upper bound (inclusive)
	catalogPath     string  // YAML request-type catalog file (optional)
	tickRate        float64 // Wall-clock ticks per second in live mode (0 = run flat out)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "loadsim",
	Short: "Tick-driven simulator for admission control and load distribution",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the load distribution simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.DefaultConfig()
		cfg.Seed = seed
		cfg.ServerCount = serverCount
		cfg.Policy = policyName
		cfg.ArrivalRate = arrivalRate
		cfg.HistoryCapacity = historyCapacity
		cfg.DurationMin = durationMin
		cfg.DurationMax = durationMax

		if catalogPath != "" {
			catalog, err := LoadCatalog(catalogPath)
			if err != nil {
				logrus.Fatalf("unable to read request catalog: %v", err)
			}
			cfg.Catalog = catalog.RequestTypes()
			if catalog.ServiceDurationMax > 0 {
				cfg.DurationMin = catalog.ServiceDurationMin
				cfg.DurationMax = catalog.ServiceDurationMax
			}
		}

		driver, err := sim.NewDriver(cfg)
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		logrus.Infof("Starting simulation: %d servers, policy=%s, rate=%v req/tick, horizon=%d ticks",
			serverCount, policyName, arrivalRate, ticks)

		startTime := time.Now()
		executed := runTicks(driver, ticks, tickRate)

		driver.Summary().Print()
		logrus.Infof("Simulation complete: %d ticks in %s", executed, time.Since(startTime))
	},
}

// runTicks drives the simulation either flat out or paced against the wall
// clock. In live mode Ctrl-C halts the tick source; in-flight requests are
// dropped without draining.
func runTicks(driver *sim.Driver, ticks int64, tickRate float64) int64 {
	if tickRate <= 0 {
		return driver.Run(context.Background(), ticks)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	limiter := rate.NewLimiter(rate.Limit(tickRate), 1)
	for executed := int64(0); executed < ticks; executed++ {
		if err := limiter.Wait(ctx); err != nil {
			logrus.Infof("tick source halted: %v", err)
			return executed
		}
		driver.Tick()
	}
	return ticks
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random request generation")
	runCmd.Flags().Int64Var(&ticks, "ticks", 10000, "Total simulation horizon (in ticks)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().IntVar(&serverCount, "servers", 4, "Number of servers in the pool")
	runCmd.Flags().StringVar(&policyName, "policy", sim.PolicyRoundRobin, "Scheduling policy (round-robin, random, least-requests, least-response-time, dynamic-cpu)")
	runCmd.Flags().Float64Var(&arrivalRate, "rate", 0.5, "Request arrivals per tick (may be fractional)")
	runCmd.Flags().IntVar(&historyCapacity, "history-capacity", sim.DefaultHistoryCapacity, "Balance history buffer capacity")
	runCmd.Flags().Int64Var(&durationMin, "duration-min", sim.DefaultDurationMin, "Service duration lower bound, exclusive (ticks)")
	runCmd.Flags().Int64Var(&durationMax, "duration-max", sim.DefaultDurationMax, "Service duration upper bound, inclusive (ticks)")
	runCmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML request-type catalog file (overrides the built-in catalog)")
	runCmd.Flags().Float64Var(&tickRate, "tick-rate", 0, "Wall-clock ticks per second for live runs (0 = as fast as possible)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
