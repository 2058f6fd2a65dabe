// Implements the RequestQueue, which holds all requests of a single scheduling run.
// Requests live in an arena in submission order; the service order is a permutation of arena indices.

package sim

import (
	"fmt"
	"strings"
)

// RequestQueue is the ordered collection of requests owned by one Engine.
// Reordering only permutes indices into the arena, so Request identities
// survive every pass and no request can be created or dropped by a policy.
type RequestQueue struct {
	arena []Request // requests in submission order
	order []int     // arena indices in current service order
}

// newRequestQueue builds a queue over the given cylinders, preserving their order.
func newRequestQueue(cylinders []int) *RequestQueue {
	rq := &RequestQueue{
		arena: make([]Request, len(cylinders)),
		order: make([]int, len(cylinders)),
	}
	for i, c := range cylinders {
		rq.arena[i] = *NewRequest(c)
		rq.order[i] = i
	}
	return rq
}

// Len returns the number of requests in the queue.
func (rq *RequestQueue) Len() int {
	return len(rq.order)
}

// At returns the request at position i of the current service order.
func (rq *RequestQueue) At(i int) *Request {
	return &rq.arena[rq.order[i]]
}

// Cylinders returns the cylinder values in current service order.
func (rq *RequestQueue) Cylinders() []int {
	out := make([]int, len(rq.order))
	for i, idx := range rq.order {
		out[i] = rq.arena[idx].Cylinder
	}
	return out
}

// SeekDiffs returns the stored seek distances in current service order.
func (rq *RequestQueue) SeekDiffs() []int {
	out := make([]int, len(rq.order))
	for i, idx := range rq.order {
		out[i] = rq.arena[idx].SeekDiff
	}
	return out
}

func (rq *RequestQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, idx := range rq.order {
		sb.WriteString(fmt.Sprint(rq.arena[idx].Cylinder))
		if i < len(rq.order)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Reorder applies fn to the service order, allowing in-place permutation.
// Ordering functions are the primary consumer:
//
//	e.queue.Reorder(func(order []int) {
//	    slices.Reverse(order)
//	})
//
// fn MUST NOT change the slice length and MUST leave a permutation of the
// original indices behind; both are checked.
func (rq *RequestQueue) Reorder(fn func(order []int)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(rq.order)
	fn(rq.order)
	if len(rq.order) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(rq.order)))
	}
	seen := make([]bool, n)
	for _, idx := range rq.order {
		if idx < 0 || idx >= n || seen[idx] {
			panic(fmt.Sprintf("Reorder: fn produced an invalid permutation %v", rq.order))
		}
		seen[idx] = true
	}
}
