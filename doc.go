// Package pulsegraph is a reactive dataflow engine: it compiles a
// user-declared directed acyclic graph of named scalar computations into a
// compact, cache-friendly runtime form, and evaluates the graph with
// deterministic, allocation-free latency whenever inputs change.
//
// Typical applications: real-time option pricing, technical-indicator
// pipelines, signal generation — anywhere a small set of inputs changes
// frequently and a larger set of dependent values must be recomputed in
// microseconds.
//
// The engine is organized as a small pipeline of packages:
//
//	graphdef/  — NodeDefinition: the immutable, user-facing description of a node.
//	registry/  — OperationRegistry: maps operation names to kernel factories.
//	kernels/   — the standard stateless operations (ADD, SUM, CLAMP, ...).
//	sma/       — the reference stateful calculator (simple moving average).
//	compiled/  — CompiledGraph: the packed CSR runtime representation.
//	compiler/  — Compile(): definitions + registry -> CompiledGraph.
//	evaluator/ — Evaluator: FULL and INCREMENTAL evaluation over a CompiledGraph.
//	metrics/   — optional Prometheus registration of evaluator counters.
//
// Quick shape of the pipeline:
//
//	defs := []graphdef.NodeDefinition{
//	    graphdef.Input("a", 10),
//	    graphdef.Input("b", 20),
//	    graphdef.Compute("sum", "ADD", "a", "b"),
//	}
//	g, err := compiler.Compile(defs, registry.Standard())
//	ev, err := evaluator.New(g, evaluator.FullMode)
//	ev.Evaluate()
//	ev.GetValue("sum") // 30, nil
//
// Out of scope: the single-producer ring-buffer event intake that would
// drive an Evaluator from an external feed, latency-histogram utilities,
// example/demo programs, and convenience layers for vectors and matrices.
// These are treated as external collaborators; the engineering value of
// this module lives entirely in the compile -> evaluate pipeline and its
// invariants.
package pulsegraph
