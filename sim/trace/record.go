// Package trace provides head-movement recording for scheduling runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// LegKind classifies a single head movement.
type LegKind string

const (
	// LegService moves the head to a pending request and services it.
	LegService LegKind = "service"
	// LegBoundary moves the head to a disk boundary without servicing anything.
	LegBoundary LegKind = "boundary"
	// LegJump returns the head to the far end of the disk (or of the pending
	// requests) without servicing anything on the way.
	LegJump LegKind = "jump"
)

// LegRecord captures one head movement of a run.
type LegRecord struct {
	Step     int
	From     int
	To       int
	Distance int
	Kind     LegKind
}
