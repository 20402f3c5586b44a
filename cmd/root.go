package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/hdlbench/hdlbench/bench"
	"github.com/hdlbench/hdlbench/bench/models"
)

var (
	// CLI flags for the simulation run
	ticks     int64   // Tick horizon (simulation stops earlier if the model finishes)
	clockMHz  float64 // Clock frequency in MHz
	logLevel  string  // Log verbosity level
	skipReset bool    // Skip the one-tick reset pulse before the run

	// CLI flags for tracing
	traceFile  string // VCD output path ("" disables tracing)
	traceDepth int    // Hierarchy depth recorded in the trace
	pauseFrom  int64  // First tick of the trace pause window
	pauseUntil int64  // Tick after the last paused one (0 disables the window)

	// CLI flags for the built-in models
	modelName    string // Which demo model to drive (counter, toggler)
	counterWidth int    // Counter register width in bits
	counterLimit uint64 // Count at which the counter requests finish (0 = never)
	pulseHigh    int    // Enable-pulser high ticks (0 with pulse-low 0 disables the hook)
	pulseLow     int    // Enable-pulser low ticks

	// CLI flags for profile presets
	profileFile string // YAML file of named bench profiles
	profileName string // Profile to apply from that file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "hdlbench",
	Short: "Clock-accurate test bench driver for hardware models",
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// Apply a preset profile, if one was requested
		if profileFile != "" {
			p := GetProfile(profileFile, profileName)
			if p == nil {
				logrus.Fatalf("Profile %q not found in %s", profileName, profileFile)
			}
			applyProfile(p)
		}

		if clockMHz <= 0 {
			logrus.Fatalf("Clock frequency must be positive, got %vMHz", clockMHz)
		}
		clk := bench.ClockFromFrequency(clockMHz * 1e6)

		// Log configuration
		logrus.Infof("Starting simulation: clock=%vMHz (H1=%dps, H2=%dps), horizon=%d ticks",
			clockMHz, clk.RiseHalfPS, clk.FallHalfPS, ticks)

		startTime := time.Now() // Get current time (start)

		b := buildBench(clk)

		if traceFile != "" {
			if err := b.OpenTrace(traceFile, traceDepth); err != nil {
				logrus.Fatalf("Unable to open trace: %v", err)
			}
			// A signaled run still ends with a flushed, parseable VCD
			atexit.Register(b.Close)
		}

		if !skipReset {
			b.Reset()
		}

		for i := int64(0); i < ticks && !b.Done(); i++ {
			if pauseUntil > pauseFrom {
				b.SetTracePaused(i >= pauseFrom && i < pauseUntil)
			}
			b.Tick()
		}

		st := b.Stats()
		logrus.Infof("Simulation complete: %d ticks, %d ps simulated, %d trace samples, wall time %v",
			st.Ticks, b.TimePS(), st.Samples, time.Since(startTime))

		b.CloseTrace()
	},
}

// buildBench constructs the selected demo model and wraps it in a bench.
func buildBench(clk bench.ClockSpec) *bench.Bench {
	switch modelName {
	case "counter":
		c := models.NewCounter(counterWidth, counterLimit)
		b := bench.NewWithClock(c, clk)
		if pulseHigh > 0 || pulseLow > 0 {
			b.Hook = models.NewEnablePulser(c, pulseHigh, pulseLow)
		}
		return b
	case "toggler":
		return bench.NewWithClock(models.NewToggler(), clk)
	default:
		logrus.Fatalf("Unknown model: %s (want counter or toggler)", modelName)
		return nil
	}
}

// applyProfile overlays non-zero profile fields onto the flag values.
func applyProfile(p *Profile) {
	if p.ClockMHz > 0 {
		clockMHz = p.ClockMHz
	}
	if p.Ticks > 0 {
		ticks = p.Ticks
	}
	if p.TraceFile != "" {
		traceFile = p.TraceFile
	}
	if p.TraceDepth > 0 {
		traceDepth = p.TraceDepth
	}
	if p.CounterWidth > 0 {
		counterWidth = p.CounterWidth
	}
	if p.CounterLimit > 0 {
		counterLimit = p.CounterLimit
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&ticks, "ticks", 1000, "Tick horizon for the run")
	runCmd.Flags().Float64Var(&clockMHz, "clock-mhz", 36.0, "Clock frequency in MHz")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&skipReset, "skip-reset", false, "Skip the one-tick reset pulse before ticking")

	// Trace configs
	runCmd.Flags().StringVar(&traceFile, "trace", "", "VCD trace output path (empty disables tracing)")
	runCmd.Flags().IntVar(&traceDepth, "trace-depth", bench.DefaultTraceDepth, "Hierarchy depth recorded in the trace")
	runCmd.Flags().Int64Var(&pauseFrom, "pause-from", 0, "First tick with trace writes suppressed")
	runCmd.Flags().Int64Var(&pauseUntil, "pause-until", 0, "Tick at which trace writes resume (0 disables the pause window)")

	// Demo model configs
	runCmd.Flags().StringVar(&modelName, "model", "counter", "Demo model to drive (counter, toggler)")
	runCmd.Flags().IntVar(&counterWidth, "counter-width", 8, "Counter register width in bits")
	runCmd.Flags().Uint64Var(&counterLimit, "counter-limit", 200, "Count at which the counter requests finish (0 = never)")
	runCmd.Flags().IntVar(&pulseHigh, "pulse-high", 0, "Enable-pulser high ticks (0 with --pulse-low 0 keeps enable high)")
	runCmd.Flags().IntVar(&pulseLow, "pulse-low", 0, "Enable-pulser low ticks")

	// Profile presets
	runCmd.Flags().StringVar(&profileFile, "profile-file", "", "YAML file of named bench profiles")
	runCmd.Flags().StringVar(&profileName, "profile", "default", "Profile to apply from --profile-file")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
