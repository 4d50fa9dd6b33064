// Package registry implements the OperationRegistry: a mapping from
// operation name to kernel factory, arity, and stateful flag.
//
// Registration is guarded by a sync.RWMutex exactly as core.Graph guards its
// vertex/edge maps in the graph-library this engine descends from: mutation
// (Register*) takes the write lock, queries (Has/Arity/IsStateful/List) take
// the read lock. A Registry handed to package compiler should be treated as
// read-only from that point on — nothing in this package enforces that, it
// is a caller discipline documented here.
//
// Standard() returns a Registry pre-populated with the preset operations
// from package kernels. SMA operations are not in the preset; package sma's
// Register adds them to a Registry.
package registry
