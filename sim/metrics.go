// Collects the outcome of a scheduling run: the service order, per-request
// seek distances and the aggregates reported to the user.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/disksched/disksched/sim/trace"
)

// Result is the outcome of one scheduling run.
type Result struct {
	Policy      Policy                 `json:"-"`
	PolicyName  string                 `json:"policy"`
	Head        int                    `json:"head"`
	Tail        int                    `json:"tail"`
	Order       []int                  `json:"order"`      // serviced cylinders in order
	SeekDiffs   []int                  `json:"seek_diffs"` // seek distance of each serviced cylinder
	TotalSeek   int                    `json:"total_seek"`
	HeadTravel  int                    `json:"head_travel"` // includes boundary trips and jumps
	AverageSeek float64                `json:"average_seek"`
	Trace       *trace.SimulationTrace `json:"-"`
}

func newResult(e *Engine) *Result {
	r := &Result{
		Policy:     e.Policy(),
		PolicyName: e.Policy().String(),
		Head:       e.Head(),
		Tail:       e.Tail(),
		Order:      e.Queue().Cylinders(),
		SeekDiffs:  e.Queue().SeekDiffs(),
		TotalSeek:  e.TotalSeek(),
		HeadTravel: e.HeadTravel(),
	}
	if len(r.Order) > 0 {
		r.AverageSeek = float64(r.TotalSeek) / float64(len(r.Order))
	}
	return r
}

// Packed returns [totalSeek, head, tail, cyl_1 ... cyl_n], the positional
// layout callers of AlgorithmSelector unpack.
func (r *Result) Packed() []int {
	packed := make([]int, 0, len(r.Order)+3)
	packed = append(packed, r.TotalSeek, r.Head, r.Tail)
	return append(packed, r.Order...)
}

// Print writes a human-readable metrics block to w.
func (r *Result) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "=== Simulation Metrics ===")
	_, _ = fmt.Fprintf(w, "Policy               : %s\n", r.PolicyName)
	_, _ = fmt.Fprintf(w, "Head / Tail          : %d / %d\n", r.Head, r.Tail)
	_, _ = fmt.Fprintf(w, "Service Order        : %v\n", r.Order)
	_, _ = fmt.Fprintf(w, "Seek Distances       : %v\n", r.SeekDiffs)
	_, _ = fmt.Fprintf(w, "Total Seek           : %d cylinders\n", r.TotalSeek)
	if len(r.Order) > 0 {
		_, _ = fmt.Fprintf(w, "Average Seek         : %.2f cylinders\n", r.AverageSeek)
	}
	if r.HeadTravel != r.TotalSeek {
		_, _ = fmt.Fprintf(w, "Head Travel          : %d cylinders\n", r.HeadTravel)
	}
}

// SaveResults writes the result as indented JSON to path.
func (r *Result) SaveResults(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	logrus.Debugf("Successfully wrote to '%s'", path)
	return nil
}
