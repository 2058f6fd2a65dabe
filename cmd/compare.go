package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/disksched/disksched/sim"
	"github.com/disksched/disksched/sim/trace"
)

var comparePolicies []string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run several policies over the same queue and tabulate them",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec, err := buildScenario(scenarioPath, presetName, defaultsFilePath, headPos, tailPos, requestCyls)
		if err != nil {
			logrus.Fatalf("Failed to build scenario: %v", err)
		}
		if len(comparePolicies) > 0 {
			spec.Policies = comparePolicies
		}
		policies, err := spec.ResolvedPolicies()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		input, err := spec.Input()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q. Valid: none, legs", traceLevel)
		}

		results, err := sim.CompareAll(input, policies, sim.WithTrace(trace.TraceLevel(traceLevel)))
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		renderComparison(os.Stdout, results)
	},
}

// renderComparison writes one row per result and names the policy with the
// lowest total seek in the footer (the first one listed wins ties).
func renderComparison(w io.Writer, results []*sim.Result) {
	rows := make([][]string, 0, len(results))
	var best *sim.Result
	for _, r := range results {
		if best == nil || r.TotalSeek < best.TotalSeek {
			best = r
		}
		row := []string{
			r.PolicyName,
			fmt.Sprint(r.TotalSeek),
			fmt.Sprint(r.HeadTravel),
			fmt.Sprintf("%.2f", r.AverageSeek),
			joinInts(r.Order),
		}
		if r.Trace != nil {
			row = append(row, fmt.Sprint(trace.Summarize(r.Trace).Reversals))
		}
		rows = append(rows, row)
	}

	header := []string{"Policy", "Total Seek", "Head Travel", "Avg Seek", "Order"}
	footer := []string{"", "", "", "", ""}
	if len(results) > 0 && results[0].Trace != nil {
		header = append(header, "Reversals")
		footer = append(footer, "")
	}
	if best != nil {
		footer[0] = "Best"
		footer[1] = fmt.Sprintf("%s\n%d", best.PolicyName, best.TotalSeek)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.SetFooter(footer)
	table.Render()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

func init() {
	addInputFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", nil, "Policies to compare (default: the scenario's list, or all six)")

	rootCmd.AddCommand(compareCmd)
}
