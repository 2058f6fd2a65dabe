package sim

import (
	"sort"

	"github.com/disksched/disksched/sim/trace"
)

// diskStart is the lowest addressable cylinder; the tail is the highest.
// A head or request outside [diskStart, tail] pushes the boundary out to reach it.
const diskStart = 0

// orderSCAN sweeps toward the tail servicing every request at or above the
// head, travels on to the tail, then reverses and services the rest on the
// way down. If the head is above every request the sweep starts downward and
// never reverses.
func orderSCAN(e *Engine) {
	n := e.queue.Len()
	p := e.sortAndSplit()
	switch {
	case p == n:
		e.MergeSortBy(0, n-1, ByCylinder, false)
	case p > 0:
		high := max(e.tail, e.head, e.queue.At(n-1).Cylinder)
		e.MergeSortBy(0, p-1, ByCylinder, false)
		e.rotate(p)
		e.markStop(n-p, high, trace.LegBoundary)
	}
	e.AbsoluteSetSeek()
}

// orderCSCAN always sweeps upward. Once the requests at or above the head are
// serviced the head travels to the tail, jumps to cylinder 0 without servicing
// anything, and sweeps upward again through the remaining requests.
func orderCSCAN(e *Engine) {
	n := e.queue.Len()
	p := e.sortAndSplit()
	if p > 0 {
		high := max(e.tail, e.head, e.queue.At(n-1).Cylinder)
		low := min(diskStart, e.queue.At(0).Cylinder)
		e.rotate(p)
		e.markStop(n-p, high, trace.LegBoundary)
		e.markStop(n-p, low, trace.LegJump)
	}
	e.AbsoluteSetSeek()
}

// sortAndSplit puts the queue in ascending cylinder order and returns the
// position of the first request at or above the head.
func (e *Engine) sortAndSplit() int {
	n := e.queue.Len()
	e.MergeSortBy(0, n-1, ByCylinder, true)
	return sort.Search(n, func(i int) bool {
		return e.queue.At(i).Cylinder >= e.head
	})
}

// rotate moves positions [p, n) to the front, keeping both halves in order.
func (e *Engine) rotate(p int) {
	e.queue.Reorder(func(order []int) {
		rotated := append(append(make([]int, 0, len(order)), order[p:]...), order[:p]...)
		copy(order, rotated)
	})
}
