// Package evaluator implements the Evaluator: a single-writer, owns-a-
// compiled.Graph driver exposing input setters, dirty-bit tracking, and two
// evaluation strategies.
//
// FULL mode traverses every compute node in compiled.Graph.ComputeOrder on
// every call: deterministic latency, no dirty tracking needed.
//
// INCREMENTAL mode performs a two-phase Mark & Sweep driven by which input
// values changed since the last successful Evaluate: Mark walks forward
// from dirty inputs through the child relation to find every compute node
// that could be affected; Sweep then recomputes exactly those nodes, in
// compiled.Graph.ComputeOrder so every recomputed node's parents are
// already current.
//
// Dirty tracking uses github.com/bits-and-blooms/bitset rather than a hash
// set: dirtyInputs and needsRecompute are both fixed-size bitsets allocated
// once at construction and cleared (not reallocated) after every Evaluate.
//
// Stateful kernels (e.g. package sma's moving average) only advance when
// Compute actually runs; in INCREMENTAL mode a node downstream of unchanged
// inputs is never recomputed, so its stateful kernel silently stalls. This
// package resolves that open question explicitly: New refuses to build an
// INCREMENTAL Evaluator over a graph containing stateful kernels unless
// WithForceStatefulDirty is supplied, in which case every stateful node
// (and everything downstream of it) is marked for recomputation on every
// Evaluate call regardless of which inputs changed.
package evaluator
