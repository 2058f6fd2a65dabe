package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Policy identifies a disk-head scheduling policy. The numeric values are
// part of the caller contract and must not change.
type Policy int

const (
	FCFS  Policy = 1 // First-Come-First-Served
	SSTF  Policy = 2 // Shortest-Seek-Time-First
	SCAN  Policy = 3 // elevator sweep, reverses at the disk boundary
	CSCAN Policy = 4 // one-way sweep, jumps back to cylinder 0
	LOOK  Policy = 5 // elevator sweep, reverses at the last request
	CLOOK Policy = 6 // one-way sweep, jumps back to the lowest request
)

// Family groups the two policies that share a traversal strategy.
type Family string

const (
	FamilyBasic        Family = "basic"
	FamilySweep        Family = "sweep"
	FamilyBoundedSweep Family = "bounded-sweep"
)

// Mode selects between the two policies of a family. Odd identifiers run the
// primitive mode (FCFS, SCAN, LOOK), even ones the optimized or cyclic mode
// (SSTF, C-SCAN, C-LOOK).
type Mode string

const (
	ModePrimitive Mode = "primitive"
	ModeOptimized Mode = "optimized"
)

// OrderFunc reorders an engine's queue in place and fills in every SeekDiff.
type OrderFunc func(e *Engine)

type familyModes struct {
	primitive OrderFunc
	optimized OrderFunc
}

// families is the dispatch table: family first, then mode.
var families = map[Family]familyModes{
	FamilyBasic:        {primitive: orderFCFS, optimized: orderSSTF},
	FamilySweep:        {primitive: orderSCAN, optimized: orderCSCAN},
	FamilyBoundedSweep: {primitive: orderLOOK, optimized: orderCLOOK},
}

var policyNames = map[Policy]string{
	FCFS:  "fcfs",
	SSTF:  "sstf",
	SCAN:  "scan",
	CSCAN: "c-scan",
	LOOK:  "look",
	CLOOK: "c-look",
}

// ValidPolicyNames maps every accepted policy name, including aliases, to its policy.
var ValidPolicyNames = map[string]Policy{
	"fcfs": FCFS, "sstf": SSTF, "scan": SCAN, "look": LOOK,
	"c-scan": CSCAN, "cscan": CSCAN,
	"c-look": CLOOK, "clook": CLOOK,
}

// IsValidPolicy returns true if id is one of the six policy identifiers.
func IsValidPolicy(id int) bool {
	_, ok := policyNames[Policy(id)]
	return ok
}

// AllPolicies returns every policy in identifier order.
func AllPolicies() []Policy {
	return []Policy{FCFS, SSTF, SCAN, CSCAN, LOOK, CLOOK}
}

// ParsePolicy accepts a policy name ("sstf", "c-look", "clook", case-insensitive)
// or its numeric identifier ("2").
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if p, ok := ValidPolicyNames[name]; ok {
		return p, nil
	}
	if id, err := strconv.Atoi(name); err == nil && IsValidPolicy(id) {
		return Policy(id), nil
	}
	return 0, fmt.Errorf("%w %q; valid: fcfs, sstf, scan, c-scan, look, c-look or 1-6", ErrUnknownPolicy, s)
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Family returns the traversal family of p, or "" for an unknown policy.
func (p Policy) Family() Family {
	switch p {
	case FCFS, SSTF:
		return FamilyBasic
	case SCAN, CSCAN:
		return FamilySweep
	case LOOK, CLOOK:
		return FamilyBoundedSweep
	default:
		return ""
	}
}

// Mode returns the mode of p within its family, chosen by identifier parity.
func (p Policy) Mode() Mode {
	if p%2 == 1 {
		return ModePrimitive
	}
	return ModeOptimized
}

// orderFor resolves a policy to its ordering function through the dispatch table.
func orderFor(p Policy) (OrderFunc, error) {
	modes, ok := families[p.Family()]
	if !ok {
		return nil, fmt.Errorf("%w: identifier %d", ErrUnknownPolicy, int(p))
	}
	if p.Mode() == ModePrimitive {
		return modes.primitive, nil
	}
	return modes.optimized, nil
}
