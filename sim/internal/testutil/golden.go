// Package testutil provides shared test infrastructure for the disksched engine.
// It holds the golden dataset types and assertion helpers used by the
// sim/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase represents a single test case from the golden dataset.
type GoldenTestCase struct {
	Name   string `json:"name"`
	Input  []int  `json:"input"`  // [head, requests..., tail]
	Policy string `json:"policy"` // policy name accepted by sim.ParsePolicy

	// Exact match output
	Packed     []int `json:"packed"` // [total_seek, head, tail, order...]
	HeadTravel int   `json:"head_travel"`

	AverageSeek float64 `json:"average_seek"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// SeekChain returns the sum of absolute differences along [head, order...].
// Tests use it as an independent oracle for total seek.
func SeekChain(head int, order []int) int {
	sum, prev := 0, head
	for _, c := range order {
		d := c - prev
		if d < 0 {
			d = -d
		}
		sum += d
		prev = c
	}
	return sum
}
