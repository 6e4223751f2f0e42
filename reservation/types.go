package reservation

import "github.com/katalvlaran/parkinglot/grid"

// VertexKey identifies a single (x, y, t) occupancy slot.
type VertexKey struct {
	X, Y, T int
}

// EdgeKey identifies a directed (x1,y1) -> (x2,y2) traversal starting at
// tick t (arriving at t+1).
type EdgeKey struct {
	X1, Y1, X2, Y2, T int
}

// Options configures optional, non-default Table behavior.
type Options struct {
	// expiringGoals, when true, makes ReserveGoal remember the horizon
	// passed in and treats a static reservation as expired once queried
	// past start+horizon. Disabled by default: spec.md documents that
	// goal-reserve-horizon is advisory only and the reference
	// implementation installs an unbounded hold. This flag exists so an
	// implementer may opt into the stricter behavior explicitly.
	expiringGoals bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithExpiringGoals opts into expiring static goal reservations after
// the horizon passed to ReserveGoal, instead of the default permanent
// hold. Not used by the default simulation wiring; see doc.go.
func WithExpiringGoals() Option {
	return func(o *Options) {
		o.expiringGoals = true
	}
}

// goalHold is the bookkeeping kept per static reservation when
// expiringGoals is enabled.
type goalHold struct {
	installedAt int
	horizon     int // 0 means "no horizon recorded", i.e. permanent
}

// Path is a strictly time-increasing sequence of grid.TimedPosition,
// as produced by the planner and consumed by ReservePath/UnreservePath.
type Path []grid.TimedPosition
