package compiler

import (
	"fmt"

	"github.com/derevyn/pulsegraph/compiled"
	"github.com/derevyn/pulsegraph/graphdef"
	"github.com/derevyn/pulsegraph/registry"
)

// Compile validates defs against reg and produces an immutable
// compiled.Graph. Identical (defs, reg) content always yields an identical
// graph: same IDs, same orders, same buffer contents.
func Compile(defs []graphdef.NodeDefinition, reg *registry.Registry, opts ...Option) (*compiled.Graph, error) {
	cfg := newConfig(opts...)

	if len(defs) == 0 {
		return nil, ErrEmptyDefinitions
	}
	n := len(defs)

	names, nameToID, inputNameToID, kinds, operations, parentNames, initialValues, err := assignIDs(defs)
	if err != nil {
		return nil, err
	}

	parentOffsets, parentIDs, parentCounts := buildParentCSR(names, nameToID, parentNames)
	if err := validateParents(names, nameToID, parentNames); err != nil {
		return nil, err
	}
	if err := validateArities(names, kinds, operations, parentCounts, reg); err != nil {
		return nil, err
	}

	childOffsets, childIDs := buildChildCSR(n, parentOffsets, parentIDs)

	fullOrder, err := kahnTopoSort(n, parentCounts, childOffsets, childIDs, names)
	if err != nil {
		return nil, err
	}

	kernelsArr, computeOrder, err := bindKernels(fullOrder, kinds, operations, reg)
	if err != nil {
		return nil, err
	}

	values := append([]float64(nil), initialValues...)

	g := &compiled.Graph{
		NodeCount:     n,
		InputCount:    len(inputNameToID),
		ComputeCount:  len(computeOrder),
		EdgeCount:     len(parentIDs),
		Names:         names,
		NameToID:      nameToID,
		InputNameToID: inputNameToID,
		Kinds:         kinds,
		Values:        values,
		Kernels:       kernelsArr,
		ParentOffsets: parentOffsets,
		ParentIDs:     parentIDs,
		ChildOffsets:  childOffsets,
		ChildIDs:      childIDs,
		ComputeOrder:  computeOrder,
		FullTopoOrder: fullOrder,
	}

	cfg.logger.Debug().
		Int("nodes", g.NodeCount).
		Int("inputs", g.InputCount).
		Int("compute", g.ComputeCount).
		Int("edges", g.EdgeCount).
		Msg("compiled graph")

	return g, nil
}

// assignIDs walks defs in order, assigning id = index and detecting
// duplicate names.
func assignIDs(defs []graphdef.NodeDefinition) (
	names []string,
	nameToID map[string]compiled.NodeID,
	inputNameToID map[string]compiled.NodeID,
	kinds []compiled.Kind,
	operations []string,
	parentNames [][]string,
	initialValues []float64,
	err error,
) {
	n := len(defs)
	names = make([]string, n)
	nameToID = make(map[string]compiled.NodeID, n)
	inputNameToID = make(map[string]compiled.NodeID)
	kinds = make([]compiled.Kind, n)
	operations = make([]string, n)
	parentNames = make([][]string, n)
	initialValues = make([]float64, n)

	firstIndex := make(map[string]int, n)

	for i, d := range defs {
		if firstSeen, exists := firstIndex[d.Name]; exists {
			err = fmt.Errorf("%w: %q first defined at index %d, redefined at index %d",
				ErrDuplicateName, d.Name, firstSeen, i)
			return
		}
		firstIndex[d.Name] = i

		id := compiled.NodeID(i)
		names[i] = d.Name
		nameToID[d.Name] = id
		operations[i] = d.Operation
		parentNames[i] = d.Parents
		initialValues[i] = d.InitialValue

		if d.Kind == graphdef.InputKind {
			kinds[i] = compiled.Input
			inputNameToID[d.Name] = id
		} else {
			kinds[i] = compiled.Compute
		}
	}
	return
}

// buildParentCSR resolves every definition's parent names into the parent
// CSR arrays. Unknown-parent validation happens separately in
// validateParents so this function can stay a pure builder.
func buildParentCSR(names []string, nameToID map[string]compiled.NodeID, parentNames [][]string) (
	offsets []int32, ids []compiled.NodeID, counts []int32,
) {
	n := len(names)
	counts = make([]int32, n)
	for i, pn := range parentNames {
		counts[i] = int32(len(pn))
	}

	offsets = make([]int32, n+1)
	for i := 0; i < n; i++ {
		offsets[i+1] = offsets[i] + counts[i]
	}

	ids = make([]compiled.NodeID, offsets[n])
	for i, pn := range parentNames {
		base := offsets[i]
		for k, pname := range pn {
			// Unknown names resolve to -1 here; validateParents reports the
			// precise error before this slice is ever read by a kernel.
			if pid, ok := nameToID[pname]; ok {
				ids[int(base)+k] = pid
			} else {
				ids[int(base)+k] = -1
			}
		}
	}
	return
}

func validateParents(names []string, nameToID map[string]compiled.NodeID, parentNames [][]string) error {
	for i, pn := range parentNames {
		for _, pname := range pn {
			if _, ok := nameToID[pname]; !ok {
				return fmt.Errorf("%w: node %q references parent %q", ErrUnknownParent, names[i], pname)
			}
		}
	}
	return nil
}

func validateArities(
	names []string,
	kinds []compiled.Kind,
	operations []string,
	parentCounts []int32,
	reg *registry.Registry,
) error {
	for i, k := range kinds {
		if k != compiled.Compute {
			continue
		}
		op := operations[i]
		if !reg.Has(op) {
			return fmt.Errorf("%w: node %q operation %q", ErrUnknownOperation, names[i], op)
		}
		arity, _ := reg.Arity(op)
		if arity == registry.Variadic {
			continue
		}
		if int(arity) != int(parentCounts[i]) {
			return fmt.Errorf("%w: node %q operation %q expected %d parents, got %d",
				ErrArityMismatch, names[i], op, int(arity), parentCounts[i])
		}
	}
	return nil
}

// buildChildCSR builds the child relation as the exact transpose of the
// parent relation: bucket parents into per-parent buckets via a counting
// pass, then flatten.
func buildChildCSR(n int, parentOffsets []int32, parentIDs []compiled.NodeID) (offsets []int32, ids []compiled.NodeID) {
	counts := make([]int32, n)
	for _, pid := range parentIDs {
		counts[pid]++
	}

	offsets = make([]int32, n+1)
	for i := 0; i < n; i++ {
		offsets[i+1] = offsets[i] + counts[i]
	}

	ids = make([]compiled.NodeID, len(parentIDs))
	cursor := append([]int32(nil), offsets[:n]...)
	for child := 0; child < n; child++ {
		start, end := parentOffsets[child], parentOffsets[child+1]
		for e := start; e < end; e++ {
			parent := parentIDs[e]
			ids[cursor[parent]] = compiled.NodeID(child)
			cursor[parent]++
		}
	}
	return
}

// kahnTopoSort runs Kahn's algorithm over the child relation, with a FIFO
// queue seeded in ID order so that ties among simultaneously-ready nodes
// resolve by insertion order, keeping compilation deterministic.
func kahnTopoSort(n int, parentCounts []int32, childOffsets []int32, childIDs []compiled.NodeID, names []string) ([]compiled.NodeID, error) {
	indeg := append([]int32(nil), parentCounts...)

	queue := make([]compiled.NodeID, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			queue = append(queue, compiled.NodeID(i))
		}
	}

	order := make([]compiled.NodeID, 0, n)
	for head := 0; head < len(queue); head++ {
		id := queue[head]
		order = append(order, id)

		start, end := childOffsets[id], childOffsets[id+1]
		for e := start; e < end; e++ {
			child := childIDs[e]
			indeg[child]--
			if indeg[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if len(order) < n {
		var stuck []string
		for i := 0; i < n; i++ {
			if indeg[i] > 0 {
				stuck = append(stuck, names[i])
			}
		}
		return nil, fmt.Errorf("%w: unresolved nodes %v", ErrCycle, stuck)
	}
	return order, nil
}

// bindKernels walks fullOrder and invokes each compute node's operation
// factory once, deriving compute_order as the compute-only sub-order.
func bindKernels(
	fullOrder []compiled.NodeID,
	kinds []compiled.Kind,
	operations []string,
	reg *registry.Registry,
) (kernelsArr []compiled.Kernel, computeOrder []compiled.NodeID, err error) {
	n := len(fullOrder)
	kernelsArr = make([]compiled.Kernel, n)
	computeOrder = make([]compiled.NodeID, 0, n)

	for _, id := range fullOrder {
		if kinds[id] != compiled.Compute {
			continue
		}
		k, createErr := reg.CreateKernel(operations[id])
		if createErr != nil {
			return nil, nil, createErr
		}
		kernelsArr[id] = k
		computeOrder = append(computeOrder, id)
	}
	return
}
