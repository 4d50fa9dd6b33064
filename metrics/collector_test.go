package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derevyn/pulsegraph/compiler"
	"github.com/derevyn/pulsegraph/evaluator"
	"github.com/derevyn/pulsegraph/graphdef"
	"github.com/derevyn/pulsegraph/metrics"
	"github.com/derevyn/pulsegraph/registry"
)

func TestCollectorReportsEvaluationCounters(t *testing.T) {
	defs := []graphdef.NodeDefinition{
		graphdef.Input("a", 1),
		graphdef.Input("b", 2),
		graphdef.Compute("sum", "ADD", "a", "b"),
	}
	g, err := compiler.Compile(defs, registry.Standard())
	require.NoError(t, err)

	ev, err := evaluator.New(g, evaluator.FullMode)
	require.NoError(t, err)
	ev.Evaluate()
	ev.Evaluate()
	ev.Evaluate()

	reg := prometheus.NewRegistry()
	require.NoError(t, metrics.Register(reg, ev))

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() != "pulsegraph_evaluator_evaluations_total" {
			continue
		}
		found = true
		require.Len(t, mf.Metric, 1)
		assert.Equal(t, 3.0, mf.Metric[0].GetCounter().GetValue())
	}
	assert.True(t, found, "expected pulsegraph_evaluator_evaluations_total to be gathered")
}

func TestCollectorReportsNodeCounts(t *testing.T) {
	defs := []graphdef.NodeDefinition{
		graphdef.Input("a", 1),
		graphdef.Input("b", 2),
		graphdef.Compute("sum", "ADD", "a", "b"),
	}
	g, err := compiler.Compile(defs, registry.Standard())
	require.NoError(t, err)

	ev, err := evaluator.New(g, evaluator.FullMode)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	require.NoError(t, metrics.Register(reg, ev))

	families, err := reg.Gather()
	require.NoError(t, err)

	byLabel := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "pulsegraph_evaluator_graph_node_count" {
			continue
		}
		for _, m := range mf.Metric {
			var kind string
			for _, l := range m.Label {
				if l.GetName() == "kind" {
					kind = l.GetValue()
				}
			}
			byLabel[kind] = m.GetGauge().GetValue()
		}
	}

	assert.Equal(t, 2.0, byLabel["input"])
	assert.Equal(t, 1.0, byLabel["compute"])
}
