package evaluator

import (
	"fmt"
	"math"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"

	"github.com/derevyn/pulsegraph/compiled"
)

// Stats is a snapshot of the Evaluator's running counters.
type Stats struct {
	EvaluationCount    uint64
	TotalNodesComputed uint64
	TotalElapsedNanos  uint64
	Mode               Mode
}

// Evaluator owns a *compiled.Graph and drives its evaluation. It is a
// single-writer, single-threaded unit: the values buffer, the two
// bitsets, and the stack below belong exclusively to this Evaluator.
// Evaluating the same CompiledGraph from two Evaluators concurrently is
// undefined.
type Evaluator struct {
	graph  *compiled.Graph
	mode   Mode
	logger zerolog.Logger

	forceStatefulDirty bool
	statefulNodeIDs    []compiled.NodeID

	dirtyInputs    *bitset.BitSet
	needsRecompute *bitset.BitSet
	dfsStack       []compiled.NodeID

	evaluationCount    uint64
	totalNodesComputed uint64
	totalElapsedNanos  uint64
}

// New constructs an Evaluator over g in the given mode. In IncrementalMode,
// if g contains any stateful kernel, WithForceStatefulDirty must be passed
// or New returns ErrStatefulRequiresFullOrForce.
func New(g *compiled.Graph, mode Mode, opts ...Option) (*Evaluator, error) {
	cfg := newConfig(opts...)

	statefulIDs := statefulNodeIDs(g)

	if mode == IncrementalMode && len(statefulIDs) > 0 && !cfg.forceStatefulDirty {
		return nil, fmt.Errorf("%w: %d stateful node(s)", ErrStatefulRequiresFullOrForce, len(statefulIDs))
	}

	e := &Evaluator{
		graph:              g,
		mode:               mode,
		logger:             cfg.logger,
		forceStatefulDirty: cfg.forceStatefulDirty,
		statefulNodeIDs:    statefulIDs,
	}

	if mode == IncrementalMode {
		e.dirtyInputs = bitset.New(uint(g.NodeCount))
		e.needsRecompute = bitset.New(uint(g.NodeCount))
		e.dfsStack = make([]compiled.NodeID, g.NodeCount)
		// No evaluation has run yet, so every input starts dirty: the first
		// Evaluate computes every compute node reachable from an input.
		for id, k := range g.Kinds {
			if k == compiled.Input {
				e.dirtyInputs.Set(uint(id))
			}
		}
	}

	e.logger.Debug().
		Str("mode", mode.String()).
		Int("nodes", g.NodeCount).
		Int("stateful_nodes", len(statefulIDs)).
		Bool("force_stateful_dirty", cfg.forceStatefulDirty).
		Msg("evaluator constructed")

	return e, nil
}

func statefulNodeIDs(g *compiled.Graph) []compiled.NodeID {
	var ids []compiled.NodeID
	for _, id := range g.ComputeOrder {
		if _, ok := g.Kernels[id].(compiled.StatefulKernel); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Graph returns the underlying compiled graph, for diagnostics and for
// package metrics.
func (e *Evaluator) Graph() *compiled.Graph { return e.graph }

// Mode reports the evaluator's configured evaluation strategy.
func (e *Evaluator) Mode() Mode { return e.mode }

// GetValue returns the current value of name.
func (e *Evaluator) GetValue(name string) (float64, error) {
	return e.graph.GetValue(name)
}

// IsInput reports whether name identifies an input node.
func (e *Evaluator) IsInput(name string) bool {
	return e.graph.IsInput(name)
}

// SetInput writes v to the input named name. In IncrementalMode, if v
// differs from the current value by raw bit pattern, name's node is marked
// dirty. Rewriting an identical NaN is not a change; writing -0 over +0 is,
// since their sign bits differ.
func (e *Evaluator) SetInput(name string, v float64) error {
	id, ok := e.graph.InputNameToID[name]
	if !ok {
		return fmt.Errorf("%w: %q", compiled.ErrUnknownInput, name)
	}
	e.writeInput(id, v)
	return nil
}

// SetInputByID is SetInput addressed by NodeID instead of name.
func (e *Evaluator) SetInputByID(id compiled.NodeID, v float64) error {
	if id < 0 || int(id) >= e.graph.NodeCount || e.graph.Kinds[id] != compiled.Input {
		return fmt.Errorf("%w: id %d", compiled.ErrUnknownInput, id)
	}
	e.writeInput(id, v)
	return nil
}

func (e *Evaluator) writeInput(id compiled.NodeID, v float64) {
	if e.mode == IncrementalMode {
		old := e.graph.Values[id]
		if math.Float64bits(old) != math.Float64bits(v) {
			e.dirtyInputs.Set(uint(id))
		}
	}
	e.graph.Values[id] = v
}

// SetInputs is a batch SetInputByID: ids and values must have equal length.
func (e *Evaluator) SetInputs(ids []compiled.NodeID, values []float64) error {
	if len(ids) != len(values) {
		return fmt.Errorf("%w: %d ids, %d values", ErrBatchLengthMismatch, len(ids), len(values))
	}
	for i, id := range ids {
		if err := e.SetInputByID(id, values[i]); err != nil {
			return err
		}
	}
	return nil
}

// MarkDirty explicitly marks id as dirty in IncrementalMode. No-op in
// FullMode.
func (e *Evaluator) MarkDirty(id compiled.NodeID) {
	if e.mode != IncrementalMode {
		return
	}
	e.dirtyInputs.Set(uint(id))
}

// MarkDirtyByName resolves name to an input node and marks it dirty.
func (e *Evaluator) MarkDirtyByName(name string) error {
	id, ok := e.graph.InputNameToID[name]
	if !ok {
		return fmt.Errorf("%w: %q", compiled.ErrUnknownInput, name)
	}
	e.MarkDirty(id)
	return nil
}

// Evaluate performs one evaluation pass according to the configured mode
// and returns the number of compute nodes (re)computed.
func (e *Evaluator) Evaluate() int {
	start := time.Now()

	var computed int
	if e.mode == FullMode {
		computed = e.evaluateFull()
	} else {
		computed = e.evaluateIncremental()
	}

	e.evaluationCount++
	e.totalNodesComputed += uint64(computed)
	e.totalElapsedNanos += uint64(time.Since(start).Nanoseconds())

	return computed
}

func (e *Evaluator) evaluateFull() int {
	g := e.graph
	for _, id := range g.ComputeOrder {
		g.Values[id] = g.Kernels[id].Compute(id, g)
	}
	return len(g.ComputeOrder)
}

func (e *Evaluator) evaluateIncremental() int {
	g := e.graph
	top := 0

	push := func(id compiled.NodeID) {
		if e.needsRecompute.Test(uint(id)) {
			return
		}
		e.needsRecompute.Set(uint(id))
		e.dfsStack[top] = id
		top++
	}

	if e.forceStatefulDirty {
		for _, id := range e.statefulNodeIDs {
			push(id)
		}
	}

	if top == 0 && !e.dirtyInputs.Any() {
		return 0
	}

	for i, ok := e.dirtyInputs.NextSet(0); ok; i, ok = e.dirtyInputs.NextSet(i + 1) {
		cs, ce := g.ChildRange(compiled.NodeID(i))
		for k := ce - 1; k >= cs; k-- {
			push(g.ChildIDs[k])
		}
	}

	for top > 0 {
		top--
		n := e.dfsStack[top]
		cs, ce := g.ChildRange(n)
		for k := ce - 1; k >= cs; k-- {
			push(g.ChildIDs[k])
		}
	}

	e.dirtyInputs.ClearAll()

	computed := 0
	for _, id := range g.ComputeOrder {
		if e.needsRecompute.Test(uint(id)) {
			g.Values[id] = g.Kernels[id].Compute(id, g)
			computed++
		}
	}
	e.needsRecompute.ClearAll()

	return computed
}

// ResetStats zeros EvaluationCount, TotalNodesComputed, and
// TotalElapsedNanos.
func (e *Evaluator) ResetStats() {
	e.evaluationCount = 0
	e.totalNodesComputed = 0
	e.totalElapsedNanos = 0
}

// Stats returns a snapshot of the evaluator's running counters.
func (e *Evaluator) Stats() Stats {
	return Stats{
		EvaluationCount:    e.evaluationCount,
		TotalNodesComputed: e.totalNodesComputed,
		TotalElapsedNanos:  e.totalElapsedNanos,
		Mode:               e.mode,
	}
}
