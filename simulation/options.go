package simulation

import "github.com/katalvlaran/parkinglot/simlog"

// Options configures optional, non-default Scheduler behavior.
type Options struct {
	invariantChecks bool
	logger          *simlog.Logger
}

// Option is a functional option for NewScheduler, grounded on
// dijkstra.Option's shape.
type Option func(*Options)

// WithInvariantChecks enables the spec.md §8 per-tick invariant
// assertions after every Step. The scenario tests enable this; other
// callers may omit it to skip the O(A^2) pairwise-collocation scan.
func WithInvariantChecks() Option {
	return func(o *Options) { o.invariantChecks = true }
}

// WithLogger installs a *simlog.Logger. If omitted, the Scheduler logs
// nowhere (simlog.NewNop).
func WithLogger(l *simlog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{logger: simlog.NewNop()}
}
