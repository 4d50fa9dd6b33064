// Package compiler compiles a non-empty, ordered sequence of
// graphdef.NodeDefinition values against a registry.Registry into an
// immutable compiled.Graph.
//
// Compilation is deterministic: identical definitions and registry content
// always produce identical IDs, orders, and buffer contents. It proceeds in
// stages — validate, then build CSR, then topologically sort:
//
//  1. ID assignment — definition index becomes node ID; duplicate names
//     fail with ErrDuplicateName.
//  2. Parent CSR + arity validation — parent names resolve to IDs
//     (ErrUnknownParent on miss); each compute node's operation is looked
//     up in the registry (ErrUnknownOperation) and, for fixed-arity
//     operations, its parent count is checked (ErrArityMismatch).
//  3. Child CSR — built as the exact transpose of the parent relation.
//  4. Topological sort — Kahn's algorithm, FIFO over zero-indegree nodes in
//     insertion order for determinism; a short full_topo_order indicates a
//     cycle (ErrCycle).
//  5. Kernel binding — each compute node's operation factory runs once, in
//     topological order; stateful operations get a fresh kernel per node.
//  6. Value initialization — each node's InitialValue seeds Values[id].
//
// All compile errors are fatal: no partial graph is ever returned.
package compiler
