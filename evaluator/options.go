package evaluator

import "github.com/rs/zerolog"

// Mode selects the evaluation strategy.
type Mode uint8

const (
	// FullMode traverses every compute node in topological order on every
	// Evaluate call. Deterministic latency; correct for stateful kernels.
	FullMode Mode = iota
	// IncrementalMode recomputes only the descendants of dirty inputs.
	IncrementalMode
)

func (m Mode) String() string {
	if m == IncrementalMode {
		return "INCREMENTAL"
	}
	return "FULL"
}

// Option configures New. Functional options: later options override
// earlier ones.
type Option func(*config)

type config struct {
	logger             zerolog.Logger
	forceStatefulDirty bool
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger installs a zerolog.Logger for construction-time diagnostics
// (mode, node count, stateful-node count). Never used inside
// Evaluate, which must stay allocation-free.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithForceStatefulDirty allows constructing an INCREMENTAL evaluator over
// a graph containing stateful kernels. Every stateful node is marked for
// recomputation (along with everything downstream of it) on every Evaluate
// call, regardless of which inputs actually changed, so a stateful kernel
// never silently stalls because its inputs stopped changing.
func WithForceStatefulDirty() Option {
	return func(c *config) {
		c.forceStatefulDirty = true
	}
}
