package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/disksched/disksched/sim/workload"
)

var composeFromPaths []string

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Merge multiple scenarios into one",
	Long:  "Load multiple scenario YAML files and concatenate their request queues. Output is written to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(composeFromPaths) == 0 {
			logrus.Fatalf("at least one --from flag is required")
		}

		var specs []*workload.ScenarioSpec
		for _, path := range composeFromPaths {
			spec, err := workload.LoadScenario(path)
			if err != nil {
				logrus.Fatalf("Failed to load scenario %s: %v", path, err)
			}
			specs = append(specs, spec)
		}

		merged, err := workload.ComposeScenarios(specs)
		if err != nil {
			logrus.Fatalf("Compose failed: %v", err)
		}
		writeScenarioToStdout(merged)
	},
}

func init() {
	composeCmd.Flags().StringArrayVar(&composeFromPaths, "from", nil, "Path to scenario YAML file (can be repeated)")
	_ = composeCmd.MarkFlagRequired("from")

	rootCmd.AddCommand(composeCmd)
}
