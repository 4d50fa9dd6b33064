// Package compiled defines the CompiledGraph: the immutable-in-structure,
// mutable-in-values runtime representation produced by package compiler.
//
// A CompiledGraph packs every node's scalar value into one contiguous
// []float64, and represents the parent/child relation as a pair of CSR
// (Compressed Sparse Row) arrays: a flat slice of neighbor IDs plus a
// prefix-sum offsets slice. Kernels read parent values exclusively through
// this CSR lookup; they never hold pointers into the graph.
//
// Structural arrays (names, offsets, ids, compute order) never change after
// construction and may be shared read-only across goroutines. The values
// plane and the kernels are owned by exactly one Evaluator at a time; see
// package evaluator for the single-writer contract.
package compiled
