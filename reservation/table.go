package reservation

import "github.com/katalvlaran/parkinglot/grid"

// Table is the space-time reservation table: a vertex set, an edge set,
// and a static set, each a hashed Go map used as a set.
//
// Table is owned by the scheduler (simulation package) and passed by
// pointer to the planner, which only reads from it. There is no locking
// because the owning scheduler is single-threaded (spec.md §5).
type Table struct {
	opts Options

	vertex map[VertexKey]struct{}
	edge   map[EdgeKey]struct{}
	static map[grid.Position]struct{}
	goals  map[grid.Position]goalHold // only populated when opts.expiringGoals
}

// New constructs an empty reservation Table.
//
// Complexity: O(1).
func New(opts ...Option) *Table {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	t := &Table{
		opts:   o,
		vertex: make(map[VertexKey]struct{}),
		edge:   make(map[EdgeKey]struct{}),
		static: make(map[grid.Position]struct{}),
	}
	if o.expiringGoals {
		t.goals = make(map[grid.Position]goalHold)
	}
	return t
}

// IsCellFree reports whether (x, y) is unoccupied at tick t: not in the
// static set (unless an expiring goal hold has lapsed) and not in the
// vertex set at t.
//
// Complexity: O(1).
func (t *Table) IsCellFree(x, y, tick int) bool {
	pos := grid.Position{X: x, Y: y}
	if _, blocked := t.static[pos]; blocked {
		if !t.opts.expiringGoals || !t.goalExpired(pos, tick) {
			return false
		}
	}
	if _, occupied := t.vertex[VertexKey{X: x, Y: y, T: tick}]; occupied {
		return false
	}
	return true
}

func (t *Table) goalExpired(pos grid.Position, tick int) bool {
	hold, ok := t.goals[pos]
	if !ok || hold.horizon <= 0 {
		return false
	}
	return tick > hold.installedAt+hold.horizon
}

// IsEdgeFree reports whether traversing (x1,y1) -> (x2,y2) starting at
// tick t is free: neither that directed edge nor its reverse has been
// reserved for the same tick. Forbidding the reverse direction is what
// prevents a head-on vertex swap between two agents.
//
// Complexity: O(1).
func (t *Table) IsEdgeFree(x1, y1, x2, y2, tick int) bool {
	fwd := EdgeKey{X1: x1, Y1: y1, X2: x2, Y2: y2, T: tick}
	rev := EdgeKey{X1: x2, Y1: y2, X2: x1, Y2: y1, T: tick}
	if _, ok := t.edge[fwd]; ok {
		return false
	}
	if _, ok := t.edge[rev]; ok {
		return false
	}
	return true
}

// ReservePath inserts a vertex reservation for every entry of path and
// an edge reservation for every consecutive pair.
//
// Complexity: O(len(path)).
func (t *Table) ReservePath(path []grid.TimedPosition) {
	for i, tp := range path {
		t.vertex[VertexKey{X: tp.X, Y: tp.Y, T: tp.T}] = struct{}{}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		t.edge[EdgeKey{X1: prev.X, Y1: prev.Y, X2: tp.X, Y2: tp.Y, T: prev.T}] = struct{}{}
	}
}

// UnreservePath removes the vertex and edge reservations ReservePath
// would have installed for path. It is idempotent: removing an entry
// that is not present is a no-op.
//
// Complexity: O(len(path)).
func (t *Table) UnreservePath(path []grid.TimedPosition) {
	for i, tp := range path {
		delete(t.vertex, VertexKey{X: tp.X, Y: tp.Y, T: tp.T})
		if i == 0 {
			continue
		}
		prev := path[i-1]
		delete(t.edge, EdgeKey{X1: prev.X, Y1: prev.Y, X2: tp.X, Y2: tp.Y, T: prev.T})
	}
}

// ReserveGoal installs a static hold on (x, y). Per spec.md §4.2 and §9,
// this hold is permanent until explicitly released via UnreserveGoal
// regardless of any advisory horizon, unless the table was built with
// WithExpiringGoals, in which case tick and horizon bound its lifetime.
//
// Complexity: O(1).
func (t *Table) ReserveGoal(x, y int, tick, horizon int) {
	pos := grid.Position{X: x, Y: y}
	t.static[pos] = struct{}{}
	if t.opts.expiringGoals {
		t.goals[pos] = goalHold{installedAt: tick, horizon: horizon}
	}
}

// UnreserveGoal removes a static hold on (x, y). It is a no-op if (x, y)
// was not reserved.
//
// Complexity: O(1).
func (t *Table) UnreserveGoal(x, y int) {
	pos := grid.Position{X: x, Y: y}
	delete(t.static, pos)
	if t.opts.expiringGoals {
		delete(t.goals, pos)
	}
}

// IsStatic reports whether (x, y) currently carries a static hold,
// ignoring any expiry, for callers that must treat a parked car as a
// permanent wall regardless of the expiring-goals option.
//
// Complexity: O(1).
func (t *Table) IsStatic(x, y int) bool {
	_, ok := t.static[grid.Position{X: x, Y: y}]
	return ok
}
