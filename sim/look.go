package sim

import "github.com/disksched/disksched/sim/trace"

// orderLOOK behaves like SCAN but reverses at the highest pending request
// instead of travelling on to the tail.
func orderLOOK(e *Engine) {
	n := e.queue.Len()
	p := e.sortAndSplit()
	switch {
	case p == n:
		e.MergeSortBy(0, n-1, ByCylinder, false)
	case p > 0:
		e.MergeSortBy(0, p-1, ByCylinder, false)
		e.rotate(p)
	}
	e.AbsoluteSetSeek()
}

// orderCLOOK behaves like C-SCAN but jumps straight from the highest pending
// request to the lowest one.
func orderCLOOK(e *Engine) {
	n := e.queue.Len()
	p := e.sortAndSplit()
	if p > 0 {
		lowest := e.queue.At(0).Cylinder
		e.rotate(p)
		e.markStop(n-p, lowest, trace.LegJump)
	}
	e.AbsoluteSetSeek()
}
