package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	ServiceCount    int
	BoundaryCount   int
	JumpCount       int
	Reversals       int     // direction changes while sweeping; jumps do not count
	ServiceDistance int     // distance covered by service legs
	TotalDistance   int     // distance covered by all legs
	MaxServiceLeg   int
	MeanServiceLeg  float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	dir := 0 // +1 upward, -1 downward, 0 not yet moving
	for _, leg := range st.Legs {
		summary.TotalDistance += leg.Distance
		switch leg.Kind {
		case LegService:
			summary.ServiceCount++
			summary.ServiceDistance += leg.Distance
			if leg.Distance > summary.MaxServiceLeg {
				summary.MaxServiceLeg = leg.Distance
			}
		case LegBoundary:
			summary.BoundaryCount++
		case LegJump:
			summary.JumpCount++
			continue
		}

		step := sign(leg.To - leg.From)
		if step == 0 {
			continue
		}
		if dir != 0 && step != dir {
			summary.Reversals++
		}
		dir = step
	}

	if summary.ServiceCount > 0 {
		summary.MeanServiceLeg = float64(summary.ServiceDistance) / float64(summary.ServiceCount)
	}
	return summary
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
