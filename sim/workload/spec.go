package workload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/disksched/disksched/sim"
)

// CurrentVersion is the scenario format version written by this package.
const CurrentVersion = "1"

// ScenarioSpec is a disk scheduling scenario: a head position, a tail
// boundary and the pending requests between them. Requests may be listed
// explicitly, generated, or both (generated requests are appended).
// Loaded from YAML via LoadScenario(path).
type ScenarioSpec struct {
	Version  string        `yaml:"version"`
	Name     string        `yaml:"name,omitempty"`
	Head     *int          `yaml:"head,omitempty"` // nil = draw from the generator
	Tail     int           `yaml:"tail"`
	Requests []int         `yaml:"requests,omitempty"`
	Policies []string      `yaml:"policies,omitempty"` // empty = every policy
	Generate *GenerateSpec `yaml:"generate,omitempty"`
}

// GenerateSpec configures deterministic random request generation.
type GenerateSpec struct {
	Count int   `yaml:"count"`
	Min   int   `yaml:"min"`
	Max   int   `yaml:"max"` // 0 = use the scenario tail
	Seed  int64 `yaml:"seed"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario with strict field checking.
func ParseScenario(data []byte) (*ScenarioSpec, error) {
	var spec ScenarioSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if spec.Version == "" {
		spec.Version = CurrentVersion
	}
	return &spec, nil
}

// Validate checks that the scenario can be turned into engine input.
// Cylinders outside [0, tail] and duplicates are accepted with a warning.
func (s *ScenarioSpec) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported scenario version %q; valid: %s", s.Version, CurrentVersion)
	}
	if s.Tail < 0 {
		return fmt.Errorf("tail must be non-negative, got %d", s.Tail)
	}
	if s.Head == nil && s.Generate == nil {
		return fmt.Errorf("head is required unless a generate section draws it")
	}
	for i, name := range s.Policies {
		if _, err := sim.ParsePolicy(name); err != nil {
			return fmt.Errorf("policies[%d]: %w", i, err)
		}
	}
	if s.Generate != nil {
		if err := s.Generate.validate(s.Tail); err != nil {
			return fmt.Errorf("generate: %w", err)
		}
	}
	seen := make(map[int]bool, len(s.Requests))
	for i, c := range s.Requests {
		if c < 0 || c > s.Tail {
			logrus.Warnf("scenario %q: requests[%d]=%d lies outside [0, %d]", s.Name, i, c, s.Tail)
		}
		if seen[c] {
			logrus.Warnf("scenario %q: cylinder %d requested more than once", s.Name, c)
		}
		seen[c] = true
	}
	return nil
}

func (g *GenerateSpec) validate(tail int) error {
	if g.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", g.Count)
	}
	hi := g.upper(tail)
	if g.Min < 0 {
		return fmt.Errorf("min must be non-negative, got %d", g.Min)
	}
	if hi < g.Min {
		return fmt.Errorf("max (%d) must not be below min (%d)", hi, g.Min)
	}
	return nil
}

// upper resolves the inclusive upper bound for generated cylinders.
func (g *GenerateSpec) upper(tail int) int {
	if g.Max == 0 {
		return tail
	}
	return g.Max
}

// ResolvedPolicies returns the scenario's policies, or every policy when none are listed.
func (s *ScenarioSpec) ResolvedPolicies() ([]sim.Policy, error) {
	if len(s.Policies) == 0 {
		return sim.AllPolicies(), nil
	}
	out := make([]sim.Policy, 0, len(s.Policies))
	for _, name := range s.Policies {
		p, err := sim.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Input validates the scenario, runs generation if configured, and returns
// the engine input [head, requests..., tail].
func (s *ScenarioSpec) Input() ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	head, requests, err := GenerateRequests(s)
	if err != nil {
		return nil, err
	}
	input := make([]int, 0, len(requests)+2)
	input = append(input, head)
	input = append(input, requests...)
	return append(input, s.Tail), nil
}
