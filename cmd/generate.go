package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/disksched/disksched/sim/workload"
)

var (
	genName  string
	genCount int
	genMin   int
	genMax   int
	genHead  int
	genTail  int
	genSeed  int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random request queue as a scenario YAML",
	Long:  "Draw --count request cylinders uniformly from [--min, --max] with the given seed. The head is drawn too unless --head is set. Output is written to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		spec := newGeneratedScenario(genName, genTail, genCount, genMin, genMax, genSeed)
		if cmd.Flags().Changed("head") {
			head := genHead
			spec.Head = &head
		}

		resolved, err := workload.ComposeScenarios([]*workload.ScenarioSpec{spec})
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
		writeScenarioToStdout(resolved)
	},
}

func newGeneratedScenario(name string, tail, count, lo, hi int, seed int64) *workload.ScenarioSpec {
	return &workload.ScenarioSpec{
		Version: workload.CurrentVersion,
		Name:    name,
		Tail:    tail,
		Generate: &workload.GenerateSpec{
			Count: count,
			Min:   lo,
			Max:   hi,
			Seed:  seed,
		},
	}
}

// writeScenarioToStdout marshals a scenario to YAML and writes to stdout.
func writeScenarioToStdout(spec *workload.ScenarioSpec) {
	data, err := workload.MarshalScenario(spec)
	if err != nil {
		logrus.Fatalf("YAML marshal failed: %v", err)
	}
	fmt.Print(string(data))
}

func init() {
	generateCmd.Flags().StringVar(&genName, "name", "generated", "Scenario name")
	generateCmd.Flags().IntVar(&genCount, "count", 10, "Number of requests to draw")
	generateCmd.Flags().IntVar(&genMin, "min", 0, "Lowest cylinder to draw")
	generateCmd.Flags().IntVar(&genMax, "max", 0, "Highest cylinder to draw (0 = tail)")
	generateCmd.Flags().IntVar(&genHead, "head", 0, "Starting cylinder of the head (drawn when unset)")
	generateCmd.Flags().IntVar(&genTail, "tail", 199, "Last cylinder of the disk")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for random request generation")

	rootCmd.AddCommand(generateCmd)
}
