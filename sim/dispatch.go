package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/disksched/disksched/sim/trace"
)

var (
	// ErrInsufficientInput is returned when the input lacks a head or a tail.
	ErrInsufficientInput = errors.New("insufficient input: need at least a head and a tail")
	// ErrUnknownPolicy is returned for a policy identifier or name outside the six policies.
	ErrUnknownPolicy = errors.New("unknown policy")
)

// Option configures a Simulate call.
type Option func(*runConfig)

type runConfig struct {
	trace trace.TraceConfig
}

// WithTrace records every head movement of the run at the given level.
func WithTrace(level trace.TraceLevel) Option {
	return func(c *runConfig) {
		c.trace = trace.TraceConfig{Level: level}
	}
}

// AlgorithmSelector runs the policy with the given identifier (1-6) over
// input = [head, r_1 ... r_n, tail] and returns the packed result
// [totalSeek, head, tail, cyl_1 ... cyl_n]. The input is never modified.
func AlgorithmSelector(input []int, id int) ([]int, error) {
	if !IsValidPolicy(id) {
		return nil, fmt.Errorf("%w: identifier %d", ErrUnknownPolicy, id)
	}
	result, err := Simulate(input, Policy(id))
	if err != nil {
		return nil, err
	}
	return result.Packed(), nil
}

// Simulate runs policy p over input on a freshly allocated engine and returns
// the structured result.
func Simulate(input []int, p Policy, opts ...Option) (*Result, error) {
	cfg := runConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !IsValidPolicy(int(p)) {
		return nil, fmt.Errorf("%w: identifier %d", ErrUnknownPolicy, int(p))
	}

	e, err := NewEngine(input)
	if err != nil {
		return nil, err
	}
	if err := e.Run(p); err != nil {
		return nil, fmt.Errorf("running %s: %w", p, err)
	}

	result := newResult(e)
	if cfg.trace.Enabled() {
		st := trace.NewSimulationTrace(cfg.trace)
		for _, leg := range e.Legs() {
			st.RecordLeg(leg)
		}
		result.Trace = st
	}
	logrus.Infof("%s: serviced %d request(s), total seek %d, head travel %d",
		p, len(result.Order), result.TotalSeek, result.HeadTravel)
	return result, nil
}

// CompareAll runs every policy in policies over the same input. Each run
// owns its own engine, so the runs proceed in parallel. Results are returned
// in the order of policies; the first error aborts the comparison.
func CompareAll(input []int, policies []Policy, opts ...Option) ([]*Result, error) {
	results := make([]*Result, len(policies))
	var g errgroup.Group
	for i, p := range policies {
		g.Go(func() error {
			r, err := Simulate(input, p, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
