package evaluator_test

import (
	"fmt"

	"github.com/derevyn/pulsegraph/compiler"
	"github.com/derevyn/pulsegraph/evaluator"
	"github.com/derevyn/pulsegraph/graphdef"
	"github.com/derevyn/pulsegraph/registry"
)

// ExampleEvaluator_Evaluate compiles a tiny portfolio calculation — two
// prices combined into a spread and a mid price — and runs a FULL evaluation.
func ExampleEvaluator_Evaluate() {
	defs := []graphdef.NodeDefinition{
		graphdef.Input("bid", 100),
		graphdef.Input("ask", 101),
		graphdef.Compute("spread", "SUB", "ask", "bid"),
		graphdef.Compute("mid", "AVG", "bid", "ask"),
	}

	g, err := compiler.Compile(defs, registry.Standard())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ev, err := evaluator.New(g, evaluator.FullMode)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ev.Evaluate()

	spread, _ := ev.GetValue("spread")
	mid, _ := ev.GetValue("mid")
	fmt.Println(spread, mid)

	// Output:
	// 1 100.5
}

// ExampleEvaluator_incremental shows that changing one input only
// recomputes the nodes reachable from it.
func ExampleEvaluator_incremental() {
	defs := []graphdef.NodeDefinition{
		graphdef.Input("a", 1),
		graphdef.Input("b", 2),
		graphdef.Compute("sum", "ADD", "a", "b"),
		graphdef.Compute("unrelated", "NEG", "b"),
	}

	g, err := compiler.Compile(defs, registry.Standard())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ev, err := evaluator.New(g, evaluator.IncrementalMode)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ev.Evaluate()

	_ = ev.SetInput("a", 10)
	computed := ev.Evaluate()

	sum, _ := ev.GetValue("sum")
	fmt.Println(computed, sum)

	// Output:
	// 1 12
}
