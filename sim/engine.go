package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/disksched/disksched/sim/trace"
)

// Stop is a head movement that services nothing: a trip to a disk boundary
// or the return jump of a cyclic policy. After is the number of requests
// already serviced when the head makes the move.
type Stop struct {
	After    int
	Cylinder int
	Kind     trace.LegKind
}

// Engine holds the state of one scheduling run: the head position, the tail
// boundary and the requests between them. An Engine is built for a single
// run and is not safe for concurrent use.
type Engine struct {
	head  int
	tail  int
	queue *RequestQueue
	stops []Stop

	policy Policy // zero until Run completes
}

// NewEngine parses a caller sequence [head, r_1 ... r_n, tail].
// The first value becomes the head, the last the tail, and everything in
// between becomes a request in submission order. The input is copied.
// Returns ErrInsufficientInput if fewer than two values are supplied.
func NewEngine(input []int) (*Engine, error) {
	if len(input) < 2 {
		return nil, fmt.Errorf("%w: got %d value(s)", ErrInsufficientInput, len(input))
	}
	interior := append([]int(nil), input[1:len(input)-1]...)
	e := &Engine{
		head:  input[0],
		tail:  input[len(input)-1],
		queue: newRequestQueue(interior),
	}
	logrus.Debugf("engine: head=%d tail=%d queue=%v", e.head, e.tail, e.queue)
	return e, nil
}

// Head returns the starting head position.
func (e *Engine) Head() int { return e.head }

// Tail returns the upper addressable boundary.
func (e *Engine) Tail() int { return e.tail }

// Queue returns the engine's request queue in its current order.
func (e *Engine) Queue() *RequestQueue { return e.queue }

// Policy returns the policy of the last completed run, or zero if none ran.
func (e *Engine) Policy() Policy { return e.policy }

// Run orders the queue with the given policy and fills in every SeekDiff.
// Running again on the same engine reorders from the previous result.
func (e *Engine) Run(p Policy) error {
	order, err := orderFor(p)
	if err != nil {
		return err
	}
	e.stops = e.stops[:0]
	order(e)
	e.policy = p
	logrus.Debugf("engine: %s order=%v", p, e.queue)
	logrus.Debugf("engine: %s seek=%v total=%d", p, e.queue.SeekDiffs(), e.TotalSeek())
	return nil
}

// AbsoluteSetSeek stores the seek distance of every request along the current
// order, using the head as the predecessor of the first request.
// Every ordering function calls it once its final order is in place.
func (e *Engine) AbsoluteSetSeek() {
	prev := e.head
	for i := 0; i < e.queue.Len(); i++ {
		r := e.queue.At(i)
		r.SeekDiff = abs(r.Cylinder - prev)
		prev = r.Cylinder
	}
}

// TotalSeek sums the stored seek distances.
func (e *Engine) TotalSeek() int {
	sum := 0
	for i := 0; i < e.queue.Len(); i++ {
		sum += e.queue.At(i).SeekDiff
	}
	return sum
}

// RequestQueue returns the packed result [totalSeek, head, tail, cyl_1 ... cyl_n].
// Callers unpack it positionally. Each call returns a fresh slice.
func (e *Engine) RequestQueue() []int {
	packed := make([]int, 0, e.queue.Len()+3)
	packed = append(packed, e.TotalSeek(), e.head, e.tail)
	return append(packed, e.queue.Cylinders()...)
}

// markStop records a non-servicing head movement after `after` requests.
func (e *Engine) markStop(after, cylinder int, kind trace.LegKind) {
	e.stops = append(e.stops, Stop{After: after, Cylinder: cylinder, Kind: kind})
}

// Stops returns the boundary trips and jumps recorded by the last run.
func (e *Engine) Stops() []Stop {
	return append([]Stop(nil), e.stops...)
}

// Legs walks the physical head path of the last run: every request in
// service order, with boundary trips and jumps interleaved where they happen.
func (e *Engine) Legs() []trace.LegRecord {
	legs := make([]trace.LegRecord, 0, e.queue.Len()+len(e.stops))
	pos := e.head
	si := 0
	move := func(to int, kind trace.LegKind) {
		legs = append(legs, trace.LegRecord{
			Step:     len(legs),
			From:     pos,
			To:       to,
			Distance: abs(to - pos),
			Kind:     kind,
		})
		pos = to
	}
	for i := 0; i <= e.queue.Len(); i++ {
		for si < len(e.stops) && e.stops[si].After == i {
			move(e.stops[si].Cylinder, e.stops[si].Kind)
			si++
		}
		if i < e.queue.Len() {
			move(e.queue.At(i).Cylinder, trace.LegService)
		}
	}
	return legs
}

// HeadTravel is the total distance along Legs, including boundary trips
// and jumps. It equals TotalSeek for policies that never leave the requests.
func (e *Engine) HeadTravel() int {
	sum := 0
	for _, leg := range e.Legs() {
		sum += leg.Distance
	}
	return sum
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
