package compiled

import "errors"

// NodeID is a dense, zero-based index into every array of a CompiledGraph.
type NodeID int32

// Kind distinguishes an input node (no kernel, value set externally) from a
// compute node (value derived from parents by a Kernel).
type Kind uint8

const (
	// Input nodes carry a value written by a caller via SetInput; they are
	// never the target of a kernel invocation.
	Input Kind = iota
	// Compute nodes derive their value from parents via a bound Kernel.
	Compute
)

// Kernel is the computation function bound to one compute node. Compute must
// be non-blocking and allocation-free: it is invoked on the evaluator's hot
// path once per (re)computation.
//
// Compute reads parent values exclusively through g's CSR lookup — via
// g.ParentRange(self) and g.Value(parentID) — never through any pointer the
// kernel might otherwise retain. This is the only legal access path and is
// what lets the whole value plane live in one contiguous buffer.
type Kernel interface {
	Compute(self NodeID, g *Graph) float64
}

// StatefulKernel is the capability set a stateful Kernel must additionally
// expose. The registry's factory for a stateful operation must return a
// fresh StatefulKernel per node. Package compiler calls the factory once per
// compute node; it does not check whether the returned instances are
// distinct, so a factory that shares one instance is not rejected.
type StatefulKernel interface {
	Kernel

	// Reset zeros all internal state as if the kernel had never been called.
	Reset()
	// IsReady reports whether the kernel has observed enough calls to
	// produce a fully warmed-up value (e.g. an SMA with a full window).
	IsReady() bool
	// EvalCount returns how many times Compute has run on this instance.
	EvalCount() uint64
}

// ErrUnknownInput is returned by SetInput when the given name or id does not
// identify an input node.
var ErrUnknownInput = errors.New("compiled: unknown input")

// Graph is the compiled, packed runtime representation of a node graph.
// Its structural arrays (everything except Values and the Kernel instances'
// internal state) are immutable for the lifetime of the graph.
type Graph struct {
	NodeCount    int
	InputCount   int
	ComputeCount int
	EdgeCount    int

	Names         []string
	NameToID      map[string]NodeID
	InputNameToID map[string]NodeID

	Kinds []Kind

	// Values is the packed scalar state, read and written at evaluation time.
	Values []float64

	// Kernels holds one entry per node; nil for input nodes.
	Kernels []Kernel

	// Parent CSR: parents of node i are ParentIDs[ParentOffsets[i]:ParentOffsets[i+1]].
	ParentOffsets []int32
	ParentIDs     []NodeID

	// Child CSR: the transpose of the parent relation.
	ChildOffsets []int32
	ChildIDs     []NodeID

	// ComputeOrder holds the IDs of compute nodes in a valid topological
	// order. FullTopoOrder holds every node (inputs appear as roots).
	ComputeOrder  []NodeID
	FullTopoOrder []NodeID
}

// Footprint is a structural memory-footprint breakdown for diagnostics.
type Footprint struct {
	ValuesBytes       int
	ParentArraysBytes int
	ChildArraysBytes  int
	KernelSliceBytes  int
	NameIndexBytes    int
	TopoOrderBytes    int
}

// TotalBytes sums every tracked component of the footprint.
func (f Footprint) TotalBytes() int {
	return f.ValuesBytes + f.ParentArraysBytes + f.ChildArraysBytes +
		f.KernelSliceBytes + f.NameIndexBytes + f.TopoOrderBytes
}
