// Package sim provides the disk-head scheduling engine for disksched.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - request.go: a single cylinder access and its seek contribution
//   - engine.go: input parsing (head, requests, tail), seek accounting, packed output
//   - policy.go: the six policies and the table that maps each to its ordering function
//   - dispatch.go: the entry points callers use (AlgorithmSelector, Simulate, CompareAll)
//
// # Architecture
//
// Policies come in three families, each with a primitive and an optimized mode:
//   - basic.go: FCFS (primitive) and SSTF (optimized)
//   - sweep.go: SCAN (primitive) and C-SCAN (optimized)
//   - look.go: LOOK (primitive) and C-LOOK (optimized)
//
// Every ordering function permutes the engine's request order in place and finishes
// with AbsoluteSetSeek so that per-request seek distances follow the final order.
// Sub-packages hold everything outside the core:
//   - sim/trace/: per-leg head movement records
//   - sim/workload/: YAML scenarios and deterministic request generation
//
// An Engine is single-use and single-goroutine. Independent runs share no state,
// so CompareAll runs one engine per policy in parallel.
package sim
