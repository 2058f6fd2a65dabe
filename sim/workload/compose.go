package workload

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ComposeScenarios merges several scenarios into one. The head comes from the
// first scenario, the tail is the largest tail, requests are concatenated in
// input order and policy lists are unioned (a scenario without a list means
// every policy, and so does the merge). Generation sections are resolved
// before merging so the result is fully explicit.
func ComposeScenarios(specs []*ScenarioSpec) (*ScenarioSpec, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("compose: at least one scenario required")
	}

	merged := &ScenarioSpec{Version: CurrentVersion}
	var names []string
	seenPolicy := make(map[string]bool)
	allPolicies := false
	for i, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("compose: scenario[%d]: %w", i, err)
		}
		head, requests, err := GenerateRequests(spec)
		if err != nil {
			return nil, fmt.Errorf("compose: scenario[%d]: %w", i, err)
		}
		if i == 0 {
			merged.Head = &head
		}
		if spec.Tail > merged.Tail {
			merged.Tail = spec.Tail
		}
		merged.Requests = append(merged.Requests, requests...)
		if len(spec.Policies) == 0 {
			allPolicies = true
		}
		for _, p := range spec.Policies {
			if !seenPolicy[p] {
				seenPolicy[p] = true
				merged.Policies = append(merged.Policies, p)
			}
		}
		if spec.Name != "" {
			names = append(names, spec.Name)
		}
	}
	if allPolicies {
		merged.Policies = nil
	}
	merged.Name = strings.Join(names, "+")
	return merged, nil
}

// MarshalScenario renders a scenario as YAML.
func MarshalScenario(spec *ScenarioSpec) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("marshalling scenario: %w", err)
	}
	return data, nil
}
