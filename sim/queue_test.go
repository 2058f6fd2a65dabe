package sim

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestQueue_PreservesSubmissionOrder(t *testing.T) {
	// GIVEN cylinders in submission order
	rq := newRequestQueue([]int{95, 180, 34})

	// THEN Len and Cylinders reflect that order
	require.Equal(t, 3, rq.Len())
	assert.Equal(t, []int{95, 180, 34}, rq.Cylinders())
	assert.Equal(t, 180, rq.At(1).Cylinder)
}

func TestRequestQueue_Reorder_KeepsRequestIdentity(t *testing.T) {
	// GIVEN a queue and a pointer to one of its requests
	rq := newRequestQueue([]int{10, 20, 30})
	first := rq.At(0)
	first.SeekDiff = 99

	// WHEN the order is reversed
	rq.Reorder(func(order []int) { slices.Reverse(order) })

	// THEN the same Request object now sits at the back
	assert.Equal(t, []int{30, 20, 10}, rq.Cylinders())
	assert.Same(t, first, rq.At(2))
	assert.Equal(t, 99, rq.At(2).SeekDiff)
}

func TestRequestQueue_Reorder_LengthChange_Panics(t *testing.T) {
	rq := newRequestQueue([]int{1, 2, 3})
	assert.Panics(t, func() {
		rq.Reorder(func(order []int) {
			rq.order = append(order, 0)
		})
	})
}

func TestRequestQueue_Reorder_Duplicate_Panics(t *testing.T) {
	// Duplicating an index would service a request twice and drop another
	rq := newRequestQueue([]int{1, 2, 3})
	assert.Panics(t, func() {
		rq.Reorder(func(order []int) { order[0] = order[1] })
	})
}

func TestRequestQueue_Empty(t *testing.T) {
	rq := newRequestQueue(nil)
	called := false
	rq.Reorder(func(order []int) { called = true })

	assert.True(t, called, "Reorder must call fn on an empty queue")
	assert.Equal(t, 0, rq.Len())
	assert.Empty(t, rq.Cylinders())
	assert.Equal(t, "[]", rq.String())
}

func TestRequestQueue_String(t *testing.T) {
	rq := newRequestQueue([]int{53, 98, 183})
	assert.Equal(t, "[53 98 183]", rq.String())
}
