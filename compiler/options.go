package compiler

import "github.com/rs/zerolog"

// Option configures Compile. Functional options: later options override
// earlier ones, and a nil value passed to an option constructor is a no-op
// rather than a panic.
type Option func(*config)

type config struct {
	logger zerolog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger installs a zerolog.Logger for compile-time structural
// diagnostics: one Debug line with the node, input, compute and edge counts
// of a successfully compiled graph. Failed compiles are not logged; the
// error is only returned. Compile never logs inside a
// hot path — there is none at compile time — but the evaluator package
// holds the same discipline for its own construction. A zero Logger is a
// no-op (zerolog.Nop()'s default behavior), so this option only takes
// effect when a caller wants the diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
