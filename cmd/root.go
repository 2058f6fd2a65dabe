package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/disksched/disksched/sim"
	"github.com/disksched/disksched/sim/trace"
	"github.com/disksched/disksched/sim/workload"
)

var (
	// CLI flags shared by run and compare
	logLevel         string // Log verbosity level
	headPos          int    // Starting cylinder of the head
	tailPos          int    // Last cylinder of the disk
	requestCyls      []int  // Pending request cylinders in arrival order
	scenarioPath     string // Scenario YAML file
	presetName       string // Named preset from defaults.yaml
	defaultsFilePath string // Path to defaults.yaml
	traceLevel       string // Trace verbosity (none, legs)

	// CLI flags for run
	policyName  string // Policy name or identifier
	resultsPath string // File to save the result JSON to
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "disksched",
	Short: "Disk-head scheduling simulator",
}

// runCmd schedules one queue with one policy
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy over a request queue",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec, err := buildScenario(scenarioPath, presetName, defaultsFilePath, headPos, tailPos, requestCyls)
		if err != nil {
			logrus.Fatalf("Failed to build scenario: %v", err)
		}
		input, err := spec.Input()
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		// A scenario listing policies picks the first one unless --policy was given
		name := policyName
		if !cmd.Flags().Changed("policy") && len(spec.Policies) > 0 {
			name = spec.Policies[0]
		}
		policy, err := sim.ParsePolicy(name)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q. Valid: none, legs", traceLevel)
		}

		logrus.Infof("Starting %s over %d request(s), head=%d, tail=%d", policy, len(input)-2, input[0], input[len(input)-1])
		result, err := sim.Simulate(input, policy, sim.WithTrace(trace.TraceLevel(traceLevel)))
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		fmt.Println(formatPacked(result.Packed()))
		result.Print(os.Stdout)
		if result.Trace != nil {
			printTraceSummary(os.Stdout, trace.Summarize(result.Trace))
		}
		if resultsPath != "" {
			if err := result.SaveResults(resultsPath); err != nil {
				logrus.Fatalf("%v", err)
			}
		}
		logrus.Info("Simulation complete.")
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// buildScenario resolves where the queue comes from. A scenario file wins
// over a preset, and a preset wins over the head/tail/requests flags.
func buildScenario(path, preset, defaultsPath string, head, tail int, requests []int) (*workload.ScenarioSpec, error) {
	switch {
	case path != "":
		return workload.LoadScenario(path)
	case preset != "":
		return loadPreset(defaultsPath, preset)
	default:
		return &workload.ScenarioSpec{
			Version:  workload.CurrentVersion,
			Head:     &head,
			Tail:     tail,
			Requests: append([]int(nil), requests...),
		}, nil
	}
}

// formatPacked renders the packed output the way callers of the selector read it.
func formatPacked(packed []int) string {
	return fmt.Sprintf("Packed: %v", packed)
}

func printTraceSummary(w io.Writer, s *trace.TraceSummary) {
	_, _ = fmt.Fprintln(w, "=== Trace Summary ===")
	_, _ = fmt.Fprintf(w, "Service Legs         : %d\n", s.ServiceCount)
	_, _ = fmt.Fprintf(w, "Boundary Trips       : %d\n", s.BoundaryCount)
	_, _ = fmt.Fprintf(w, "Jumps                : %d\n", s.JumpCount)
	_, _ = fmt.Fprintf(w, "Reversals            : %d\n", s.Reversals)
	_, _ = fmt.Fprintf(w, "Longest Service Leg  : %d\n", s.MaxServiceLeg)
	_, _ = fmt.Fprintf(w, "Mean Service Leg     : %.2f\n", s.MeanServiceLeg)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(c *cobra.Command) {
	c.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().IntVar(&headPos, "head", 0, "Starting cylinder of the head")
	c.Flags().IntVar(&tailPos, "tail", 199, "Last cylinder of the disk")
	c.Flags().IntSliceVar(&requestCyls, "requests", nil, "Comma-separated request cylinders in arrival order")
	c.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a scenario YAML file")
	c.Flags().StringVar(&presetName, "preset", "", "Named queue preset from defaults.yaml")
	c.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")
	c.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, legs)")
}

// init sets up CLI flags and subcommands
func init() {
	addInputFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", "fcfs", "Scheduling policy (fcfs, sstf, scan, c-scan, look, c-look or 1-6)")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "File to save the result JSON to")

	rootCmd.AddCommand(runCmd)
}
