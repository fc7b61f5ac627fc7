// Package csisat is the incremental difference-logic solver at the root of
// this module.
//
// Difference logic restricts atoms to the shape "x − y ⟨≤|<|=⟩ c": cheap
// enough to decide incrementally with a single potential-function witness
// and a Dijkstra-style repair step, instead of a general linear-arithmetic
// solver.
//
// Everything lives under three packages:
//
//	difflog/ — the engine itself: Create, Push, Pop, propagation, unsat cores
//	internal/pq, internal/config — supporting infrastructure
//
// cmd/dlsolve is a small scenario-replay CLI built on top of difflog for
// exercising the engine from a YAML script.
package csisat
