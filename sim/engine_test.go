package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disksched/disksched/sim/trace"
)

var queueA = []int{50, 95, 180, 34, 119, 11, 123, 62, 64, 199}

func TestNewEngine_ExtractsHeadAndTail(t *testing.T) {
	// GIVEN the textbook input
	e, err := NewEngine(queueA)
	require.NoError(t, err)

	// THEN the sentinels are removed and the interior keeps input order
	assert.Equal(t, 50, e.Head())
	assert.Equal(t, 199, e.Tail())
	assert.Equal(t, []int{95, 180, 34, 119, 11, 123, 62, 64}, e.Queue().Cylinders())
}

func TestNewEngine_TwoValues_EmptyQueue(t *testing.T) {
	e, err := NewEngine([]int{50, 199})
	require.NoError(t, err)
	assert.Equal(t, 0, e.Queue().Len())
	assert.Equal(t, []int{0, 50, 199}, e.RequestQueue())
}

func TestNewEngine_TooShort_ReturnsInsufficientInput(t *testing.T) {
	for _, input := range [][]int{nil, {}, {50}} {
		_, err := NewEngine(input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInsufficientInput), "got %v", err)
	}
}

func TestNewEngine_DoesNotAliasInput(t *testing.T) {
	// GIVEN an input slice
	input := []int{50, 10, 20, 199}
	e, err := NewEngine(input)
	require.NoError(t, err)

	// WHEN the caller mutates the slice afterwards
	input[1] = 999

	// THEN the engine is unaffected
	assert.Equal(t, []int{10, 20}, e.Queue().Cylinders())
}

func TestEngine_AbsoluteSetSeek_UsesHeadAsFirstPredecessor(t *testing.T) {
	e, err := NewEngine([]int{50, 95, 34, 199})
	require.NoError(t, err)

	e.AbsoluteSetSeek()

	assert.Equal(t, []int{45, 61}, e.Queue().SeekDiffs())
	assert.Equal(t, 106, e.TotalSeek())
}

func TestEngine_RequestQueue_PackingLayout(t *testing.T) {
	// GIVEN a completed FCFS run
	e, err := NewEngine(queueA)
	require.NoError(t, err)
	require.NoError(t, e.Run(FCFS))

	// THEN the packed output is [total, head, tail, order...]
	assert.Equal(t, []int{644, 50, 199, 95, 180, 34, 119, 11, 123, 62, 64}, e.RequestQueue())
}

func TestEngine_RequestQueue_IdempotentAndIndependent(t *testing.T) {
	e, err := NewEngine(queueA)
	require.NoError(t, err)
	require.NoError(t, e.Run(SSTF))

	first := e.RequestQueue()
	first[0] = -1 // callers own the returned slice
	second := e.RequestQueue()

	assert.Equal(t, 236, second[0])
	assert.Equal(t, e.RequestQueue(), second)
}

func TestEngine_Run_UnknownPolicy(t *testing.T) {
	e, err := NewEngine(queueA)
	require.NoError(t, err)

	err = e.Run(Policy(7))

	assert.True(t, errors.Is(err, ErrUnknownPolicy), "got %v", err)
	assert.Equal(t, Policy(0), e.Policy())
}

func TestEngine_Run_Twice_RecomputesFromCurrentOrder(t *testing.T) {
	// The API allows a second pass; seek distances must follow the new order
	e, err := NewEngine(queueA)
	require.NoError(t, err)
	require.NoError(t, e.Run(SSTF))
	require.NoError(t, e.Run(LOOK))

	assert.Equal(t, LOOK, e.Policy())
	assert.Equal(t, []int{62, 64, 95, 119, 123, 180, 34, 11}, e.Queue().Cylinders())
	assert.Equal(t, 299, e.TotalSeek())
	assert.Empty(t, e.Stops(), "LOOK records no stops")
}

func TestEngine_Legs_ScanIncludesBoundaryTrip(t *testing.T) {
	e, err := NewEngine(queueA)
	require.NoError(t, err)
	require.NoError(t, e.Run(SCAN))

	legs := e.Legs()

	// 8 service legs plus the trip to the tail
	require.Len(t, legs, 9)
	assert.Equal(t, trace.LegBoundary, legs[6].Kind)
	assert.Equal(t, 180, legs[6].From)
	assert.Equal(t, 199, legs[6].To)
	assert.Equal(t, 337, e.HeadTravel())
	for i, leg := range legs {
		assert.Equal(t, i, leg.Step)
	}
}

func TestEngine_Legs_FcfsMatchesTotalSeek(t *testing.T) {
	e, err := NewEngine(queueA)
	require.NoError(t, err)
	require.NoError(t, e.Run(FCFS))

	assert.Equal(t, e.TotalSeek(), e.HeadTravel())
	assert.Empty(t, e.Stops())
}
