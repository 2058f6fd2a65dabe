package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/disksched/disksched/sim/workload"
)

// Preset describes a named request queue in defaults.yaml.
type Preset struct {
	Description string   `yaml:"description"`
	Head        int      `yaml:"head"`
	Tail        int      `yaml:"tail"`
	Requests    []int    `yaml:"requests"`
	Policies    []string `yaml:"policies"`
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version string            `yaml:"version"`
	Presets map[string]Preset `yaml:"presets"`
}

func loadDefaultsConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read defaults file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse defaults YAML: %w", err)
	}
	return cfg, nil
}

// loadPreset turns a named preset from defaults.yaml into a scenario.
func loadPreset(defaultsPath, name string) (*workload.ScenarioSpec, error) {
	cfg, err := loadDefaultsConfig(defaultsPath)
	if err != nil {
		return nil, err
	}
	p, ok := cfg.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q; valid: %v", name, presetNames(cfg))
	}
	head := p.Head
	return &workload.ScenarioSpec{
		Version:  workload.CurrentVersion,
		Name:     name,
		Head:     &head,
		Tail:     p.Tail,
		Requests: append([]int(nil), p.Requests...),
		Policies: append([]string(nil), p.Policies...),
	}, nil
}

func presetNames(cfg Config) []string {
	names := make([]string, 0, len(cfg.Presets))
	for name := range cfg.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the queue presets in defaults.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadDefaultsConfig(defaultsFilePath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Preset", "Head", "Tail", "Requests", "Description"})
		for _, name := range presetNames(cfg) {
			p := cfg.Presets[name]
			table.Append([]string{name, fmt.Sprint(p.Head), fmt.Sprint(p.Tail), fmt.Sprint(len(p.Requests)), p.Description})
		}
		table.Render()
	},
}

func init() {
	presetsCmd.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")

	rootCmd.AddCommand(presetsCmd)
}
