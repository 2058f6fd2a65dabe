package trace

// TraceLevel controls the verbosity of run tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelLegs captures every head movement, including boundary trips and jumps.
	TraceLevelLegs TraceLevel = "legs"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone: true,
	TraceLevelLegs: true,
	"":             true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether the config records anything.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelLegs
}

// SimulationTrace collects head movement records during a run.
type SimulationTrace struct {
	Config TraceConfig
	Legs   []LegRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Legs:   make([]LegRecord, 0),
	}
}

// RecordLeg appends a head movement record.
func (st *SimulationTrace) RecordLeg(record LegRecord) {
	st.Legs = append(st.Legs, record)
}
