package workload

import (
	"fmt"

	"github.com/disksched/disksched/sim"
)

// GenerateRequests resolves the head position and the full request list of
// a scenario. Explicit requests come first, generated ones are appended.
// Deterministic given the same spec and seed.
func GenerateRequests(spec *ScenarioSpec) (head int, requests []int, err error) {
	requests = append([]int(nil), spec.Requests...)
	if spec.Generate == nil {
		if spec.Head == nil {
			return 0, nil, fmt.Errorf("scenario %q has no head and no generate section", spec.Name)
		}
		return *spec.Head, requests, nil
	}

	g := spec.Generate
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(g.Seed))
	lo, hi := g.Min, g.upper(spec.Tail)

	cylinderRNG := rng.ForSubsystem(sim.SubsystemCylinders)
	for i := 0; i < g.Count; i++ {
		requests = append(requests, lo+cylinderRNG.Intn(hi-lo+1))
	}

	if spec.Head != nil {
		head = *spec.Head
	} else {
		head = lo + rng.ForSubsystem(sim.SubsystemHead).Intn(hi-lo+1)
	}
	return head, requests, nil
}
