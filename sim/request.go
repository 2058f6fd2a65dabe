// Defines the Request struct that models a single pending cylinder access.
// Tracks the requested cylinder and the seek distance computed once the request is ordered.

package sim

import (
	"fmt"
)

// Request is one pending access to a disk cylinder.
// Cylinder is fixed at construction; SeekDiff is rewritten by every scheduling pass
// and always holds a non-negative distance.
type Request struct {
	Cylinder int // Cylinder being requested
	SeekDiff int // Distance from the previously serviced position (head for the first request)
}

// NewRequest creates a Request for the given cylinder.
// Any integer is accepted, including negative and duplicate values.
func NewRequest(cylinder int) *Request {
	return &Request{Cylinder: cylinder}
}

// This method returns a human-readable string representation of a Request.
func (req Request) String() string {
	return fmt.Sprintf("Request: (Cylinder: %d, SeekDiff: %d)", req.Cylinder, req.SeekDiff)
}
