package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disksched/disksched/sim/trace"
)

func TestAlgorithmSelector_FCFS_TextbookQueue(t *testing.T) {
	// GIVEN head=50, tail=199 and eight pending requests
	// WHEN FCFS (1) is selected
	out, err := AlgorithmSelector(queueA, 1)

	// THEN the packed output is [644, 50, 199, submission order...]
	require.NoError(t, err)
	assert.Equal(t, []int{644, 50, 199, 95, 180, 34, 119, 11, 123, 62, 64}, out)
}

func TestAlgorithmSelector_SSTF_TextbookQueue(t *testing.T) {
	out, err := AlgorithmSelector(queueA, 2)

	require.NoError(t, err)
	assert.Equal(t, []int{236, 50, 199, 62, 64, 34, 11, 95, 119, 123, 180}, out)
}

func TestAlgorithmSelector_UnknownIdentifier_ReturnsUnknownPolicy(t *testing.T) {
	for _, id := range []int{0, 7, -1} {
		out, err := AlgorithmSelector(queueA, id)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, ErrUnknownPolicy), "id %d: got %v", id, err)
	}
}

func TestAlgorithmSelector_ShortInput_ReturnsInsufficientInput(t *testing.T) {
	_, err := AlgorithmSelector([]int{50}, 1)
	assert.True(t, errors.Is(err, ErrInsufficientInput), "got %v", err)
}

func TestAlgorithmSelector_DoesNotMutateInput(t *testing.T) {
	for id := 1; id <= 6; id++ {
		input := []int{50, 95, 180, 34, 119, 11, 123, 62, 64, 199}
		_, err := AlgorithmSelector(input, id)
		require.NoError(t, err)
		assert.Equal(t, queueA, input, "id %d mutated input", id)
	}
}

func TestAlgorithmSelector_FreshEnginePerCall(t *testing.T) {
	// Two calls with different policies must not leak state into each other
	first, err := AlgorithmSelector(queueA, 2)
	require.NoError(t, err)
	_, err = AlgorithmSelector(queueA, 4)
	require.NoError(t, err)
	again, err := AlgorithmSelector(queueA, 2)
	require.NoError(t, err)

	assert.Equal(t, first, again)
}

func TestSimulate_WithoutTrace_NoTraceAttached(t *testing.T) {
	r, err := Simulate(queueA, SCAN)
	require.NoError(t, err)
	assert.Nil(t, r.Trace)
}

func TestSimulate_WithTraceNone_NoTraceAttached(t *testing.T) {
	r, err := Simulate(queueA, SCAN, WithTrace(trace.TraceLevelNone))
	require.NoError(t, err)
	assert.Nil(t, r.Trace)
}

func TestSimulate_WithTraceLegs_RecordsEveryMove(t *testing.T) {
	r, err := Simulate(queueA, CSCAN, WithTrace(trace.TraceLevelLegs))
	require.NoError(t, err)
	require.NotNil(t, r.Trace)

	// 8 services + boundary + jump
	assert.Len(t, r.Trace.Legs, 10)
	total := 0
	for _, leg := range r.Trace.Legs {
		total += leg.Distance
	}
	assert.Equal(t, r.HeadTravel, total)
}

func TestSimulate_UnknownPolicy(t *testing.T) {
	_, err := Simulate(queueA, Policy(42))
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}

func TestCompareAll_ResultsInPolicyOrder(t *testing.T) {
	// GIVEN every policy
	policies := AllPolicies()

	// WHEN compared over the same input
	results, err := CompareAll(queueA, policies)

	// THEN each result matches a standalone run of the same policy
	require.NoError(t, err)
	require.Len(t, results, len(policies))
	for i, p := range policies {
		single, err := Simulate(queueA, p)
		require.NoError(t, err)
		assert.Equal(t, p, results[i].Policy)
		assert.Equal(t, single.Packed(), results[i].Packed())
	}
}

func TestCompareAll_UnknownPolicy_Fails(t *testing.T) {
	_, err := CompareAll(queueA, []Policy{FCFS, Policy(9)})
	assert.True(t, errors.Is(err, ErrUnknownPolicy), "got %v", err)
}

func TestCompareAll_ShortInput_Fails(t *testing.T) {
	_, err := CompareAll([]int{1}, AllPolicies())
	assert.True(t, errors.Is(err, ErrInsufficientInput), "got %v", err)
}
