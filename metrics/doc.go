// Package metrics exposes an Evaluator's running counters as Prometheus
// gauges and counters, via a prometheus.Collector implementation.
//
// This package is deliberately kept outside the evaluator's hot path:
// Collect reads Evaluator.Stats() and compiled.Graph.FootprintBytes()
// lazily, once per scrape, never on the Evaluate call itself.
package metrics
