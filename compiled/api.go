package compiled

import (
	"errors"
	"fmt"
)

// ErrUnknownNode is returned when a name does not identify any node at all
// (neither input nor compute).
var ErrUnknownNode = errors.New("compiled: unknown node")

// Value returns the current packed value of id with no bounds checking or
// name resolution. It is the allocation-free path kernels use to read their
// parents: id = g.ParentIDs[start+k], then g.Value(id).
func (g *Graph) Value(id NodeID) float64 {
	return g.Values[id]
}

// GetValue resolves name to a node and returns its current value.
func (g *Graph) GetValue(name string) (float64, error) {
	id, ok := g.NameToID[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return g.Values[id], nil
}

// GetValueByID returns the current value of id, bounds-checked.
func (g *Graph) GetValueByID(id NodeID) (float64, error) {
	if id < 0 || int(id) >= g.NodeCount {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownNode, id)
	}
	return g.Values[id], nil
}

// SetInput resolves name to an input node and writes its value. It fails
// with ErrUnknownInput if name is not an input (including if it names a
// compute node or no node at all).
func (g *Graph) SetInput(name string, v float64) error {
	id, ok := g.InputNameToID[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInput, name)
	}
	g.Values[id] = v
	return nil
}

// SetInputByID writes v to id if id names an input node.
func (g *Graph) SetInputByID(id NodeID, v float64) error {
	if id < 0 || int(id) >= g.NodeCount || g.Kinds[id] != Input {
		return fmt.Errorf("%w: id %d", ErrUnknownInput, id)
	}
	g.Values[id] = v
	return nil
}

// IsInput reports whether name identifies an input node.
func (g *Graph) IsInput(name string) bool {
	_, ok := g.InputNameToID[name]
	return ok
}

// ID resolves a node name to its NodeID.
func (g *Graph) ID(name string) (NodeID, bool) {
	id, ok := g.NameToID[name]
	return id, ok
}

// Name returns the name of id, bounds-checked.
func (g *Graph) Name(id NodeID) (string, bool) {
	if id < 0 || int(id) >= g.NodeCount {
		return "", false
	}
	return g.Names[id], true
}

// ParentRange returns the half-open index range [start, end) into ParentIDs
// holding the parents of id. Allocation-free.
func (g *Graph) ParentRange(id NodeID) (start, end int32) {
	return g.ParentOffsets[id], g.ParentOffsets[id+1]
}

// ChildRange returns the half-open index range [start, end) into ChildIDs
// holding the children of id. Allocation-free.
func (g *Graph) ChildRange(id NodeID) (start, end int32) {
	return g.ChildOffsets[id], g.ChildOffsets[id+1]
}

// FootprintBytes reports the approximate memory footprint of the graph's
// structural arrays and value plane, broken down by component, for
// diagnostics and for the metrics package's gauge.
func (g *Graph) FootprintBytes() Footprint {
	const (
		float64Size = 8
		int32Size   = 4
		ptrSize     = 8
	)
	namesBytes := 0
	for _, n := range g.Names {
		namesBytes += len(n)
	}
	nameIndexBytes := namesBytes + len(g.NameToID)*ptrSize + len(g.InputNameToID)*ptrSize

	return Footprint{
		ValuesBytes:       len(g.Values) * float64Size,
		ParentArraysBytes: len(g.ParentOffsets)*int32Size + len(g.ParentIDs)*int32Size,
		ChildArraysBytes:  len(g.ChildOffsets)*int32Size + len(g.ChildIDs)*int32Size,
		KernelSliceBytes:  len(g.Kernels) * ptrSize,
		NameIndexBytes:    nameIndexBytes,
		TopoOrderBytes:    (len(g.ComputeOrder) + len(g.FullTopoOrder)) * int32Size,
	}
}
