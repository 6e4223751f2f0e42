package planner

import (
	"errors"

	"github.com/katalvlaran/parkinglot/grid"
)

// Sentinel errors returned by Plan for malformed input. These are
// distinct from an ordinary search failure (spec.md's PlanFailure),
// which Plan reports via its bool return, not an error.
var (
	// ErrOutOfBounds indicates start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("planner: start or goal out of grid bounds")
	// ErrNotDrivable indicates start or goal is not a drivable cell.
	ErrNotDrivable = errors.New("planner: start or goal is not a drivable cell")
	// ErrNonPositiveHorizon indicates Request.Horizon <= 0.
	ErrNonPositiveHorizon = errors.New("planner: horizon must be positive")
)

// Request bundles one planning call's inputs.
type Request struct {
	Start     grid.Position
	StartTime int
	Goal      grid.Position

	// Horizon is the per-plan tick cap (spec.md: planning_horizon). The
	// absolute tick ceiling is StartTime + Horizon.
	Horizon int

	// Obstacles are positions treated as blocked for the first
	// ObstaclePersistence ticks after StartTime; after that they are
	// assumed to have moved and are no longer considered.
	Obstacles           map[grid.Position]struct{}
	ObstaclePersistence int
}

// Options carries optional, non-default tuning that never changes the
// seven admissibility rules — only observability.
type Options struct {
	onExpand func(x, y, t int) // called once per popped node; test/bench hook
}

// Option is a functional option for Plan.
type Option func(*Options)

// WithExpansionHook installs a callback invoked once per node popped from
// the open set, for tests and benchmarks that want to count expansions.
// Never used by production callers.
func WithExpansionHook(fn func(x, y, t int)) Option {
	return func(o *Options) {
		o.onExpand = fn
	}
}

// Path is the sequence a successful Plan returns: strictly
// time-increasing, first element (Start, StartTime), last element's
// position equal to Goal.
type Path []grid.TimedPosition
