package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/derevyn/pulsegraph/evaluator"
)

// Collector adapts an *evaluator.Evaluator to prometheus.Collector. One
// Collector wraps one Evaluator; register it on whatever
// *prometheus.Registry the host process already maintains.
type Collector struct {
	ev *evaluator.Evaluator

	evaluations      *prometheus.Desc
	nodesComputed    *prometheus.Desc
	elapsedSeconds   *prometheus.Desc
	footprintBytes   *prometheus.Desc
	nodeCount        *prometheus.Desc
}

// NewCollector builds a Collector over ev. Every metric name is qualified
// with the fixed prefix pulsegraph_evaluator_.
func NewCollector(ev *evaluator.Evaluator) *Collector {
	const (
		namespace = "pulsegraph"
		subsystem = "evaluator"
	)
	return &Collector{
		ev: ev,
		evaluations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "evaluations_total"),
			"Total number of Evaluate calls.",
			nil, nil,
		),
		nodesComputed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "nodes_computed_total"),
			"Total number of compute-node recomputations across all Evaluate calls.",
			nil, nil,
		),
		elapsedSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "elapsed_seconds_total"),
			"Total wall-clock time spent inside Evaluate.",
			nil, nil,
		),
		footprintBytes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "graph_footprint_bytes"),
			"Approximate memory footprint of the compiled graph's structural arrays, by component.",
			[]string{"component"}, nil,
		),
		nodeCount: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "graph_node_count"),
			"Number of nodes in the compiled graph, by kind.",
			[]string{"kind"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.evaluations
	ch <- c.nodesComputed
	ch <- c.elapsedSeconds
	ch <- c.footprintBytes
	ch <- c.nodeCount
}

// Collect implements prometheus.Collector. It reads a snapshot of the
// Evaluator's counters and the graph's structural footprint; it never
// touches the Evaluate path.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.ev.Stats()

	ch <- prometheus.MustNewConstMetric(c.evaluations, prometheus.CounterValue, float64(stats.EvaluationCount))
	ch <- prometheus.MustNewConstMetric(c.nodesComputed, prometheus.CounterValue, float64(stats.TotalNodesComputed))
	ch <- prometheus.MustNewConstMetric(c.elapsedSeconds, prometheus.CounterValue, float64(stats.TotalElapsedNanos)/1e9)

	g := c.ev.Graph()
	fp := g.FootprintBytes()
	ch <- prometheus.MustNewConstMetric(c.footprintBytes, prometheus.GaugeValue, float64(fp.ValuesBytes), "values")
	ch <- prometheus.MustNewConstMetric(c.footprintBytes, prometheus.GaugeValue, float64(fp.ParentArraysBytes), "parent_arrays")
	ch <- prometheus.MustNewConstMetric(c.footprintBytes, prometheus.GaugeValue, float64(fp.ChildArraysBytes), "child_arrays")
	ch <- prometheus.MustNewConstMetric(c.footprintBytes, prometheus.GaugeValue, float64(fp.KernelSliceBytes), "kernel_slice")
	ch <- prometheus.MustNewConstMetric(c.footprintBytes, prometheus.GaugeValue, float64(fp.NameIndexBytes), "name_index")
	ch <- prometheus.MustNewConstMetric(c.footprintBytes, prometheus.GaugeValue, float64(fp.TopoOrderBytes), "topo_order")

	ch <- prometheus.MustNewConstMetric(c.nodeCount, prometheus.GaugeValue, float64(g.InputCount), "input")
	ch <- prometheus.MustNewConstMetric(c.nodeCount, prometheus.GaugeValue, float64(g.ComputeCount), "compute")
}

var _ prometheus.Collector = (*Collector)(nil)

// Register creates a Collector for ev and registers it on reg.
func Register(reg *prometheus.Registry, ev *evaluator.Evaluator) error {
	return reg.Register(NewCollector(ev))
}
