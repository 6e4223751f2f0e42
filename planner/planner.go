package planner

import (
	"container/heap"

	"github.com/katalvlaran/parkinglot/grid"
	"github.com/katalvlaran/parkinglot/reservation"
)

// moves are the four cardinal offsets plus "wait", tried in a fixed
// order so the deterministic tie-break (see doc.go) only ever needs to
// compare already-distinct (f, g, t, x, y) tuples, never move order.
var moves = [5][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {0, 0}}

// Plan runs time-expanded A* for one agent from req.Start at req.StartTime
// to req.Goal, against g and tbl, respecting req.Obstacles for
// req.ObstaclePersistence ticks.
//
// A neighbor (nx, ny) at t+1 is admissible iff, in order:
//  1. (nx, ny) is in bounds.
//  2. g.Kind(nx,ny) != Wall.
//  3. g.Kind(nx,ny) != Exit, unless (nx,ny) == req.Goal.
//  4. g.Kind(nx,ny) != Entry, unless (nx,ny) == req.Start or req.Goal.
//  5. (nx,ny) not in req.Obstacles, OR t+1 >= req.StartTime+req.ObstaclePersistence.
//  6. (nx,ny) not static in tbl AND (nx,ny,t+1) not a vertex reservation.
//  7. Neither (x,y,nx,ny,t) nor (nx,ny,x,y,t) is an edge reservation.
//
// Returns (path, true, nil) on success, (nil, false, nil) if no path is
// found within the horizon (spec.md's PlanFailure — expected, non-fatal),
// or (nil, false, err) if the request itself is malformed.
//
// Complexity: see doc.go.
func Plan(g *grid.Grid, tbl *reservation.Table, req Request, opts ...Option) (Path, bool, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	if req.Horizon <= 0 {
		return nil, false, ErrNonPositiveHorizon
	}
	if !g.InBounds(req.Start.X, req.Start.Y) || !g.InBounds(req.Goal.X, req.Goal.Y) {
		return nil, false, ErrOutOfBounds
	}
	if !g.Drivable(req.Start.X, req.Start.Y) || !g.Drivable(req.Goal.X, req.Goal.Y) {
		return nil, false, ErrNotDrivable
	}
	if _, blocked := req.Obstacles[req.Start]; blocked {
		// Spawning on top of an ephemeral obstacle is an immediate failure,
		// not a malformed request.
		return nil, false, nil
	}

	r := &runner{
		g:        g,
		tbl:      tbl,
		req:      req,
		opts:     cfg,
		width:    g.Width(),
		height:   g.Height(),
		area:     g.Width() * g.Height(),
		maxTick:  req.StartTime + req.Horizon,
		persistUntil: req.StartTime + req.ObstaclePersistence,
	}
	return r.search()
}

// runner holds the mutable state for a single Plan invocation.
type runner struct {
	g      *grid.Grid
	tbl    *reservation.Table
	req    Request
	opts   Options
	width  int
	height int
	area   int

	maxTick      int
	persistUntil int
}

// key packs (t, x, y) into a single int, per spec.md Design Notes.
func (r *runner) key(x, y, t int) int {
	return t*r.area + x*r.height + y
}

func (r *runner) unkey(k int) (x, y, t int) {
	t, idx := k/r.area, k%r.area
	x, y = idx/r.height, idx%r.height
	return x, y, t
}

func (r *runner) heuristic(x, y int) int {
	return grid.Manhattan(grid.Position{X: x, Y: y}, r.req.Goal)
}

func (r *runner) search() (Path, bool, error) {
	startKey := r.key(r.req.Start.X, r.req.Start.Y, r.req.StartTime)

	gScore := map[int]int{startKey: 0}
	cameFrom := map[int]int{}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &node{
		key: startKey,
		f:   r.heuristic(r.req.Start.X, r.req.Start.Y),
		g:   0,
		t:   r.req.StartTime,
		x:   r.req.Start.X,
		y:   r.req.Start.Y,
	})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if best, ok := gScore[cur.key]; !ok || cur.g != best {
			continue // stale heap entry
		}
		if r.opts.onExpand != nil {
			r.opts.onExpand(cur.x, cur.y, cur.t)
		}

		if cur.x == r.req.Goal.X && cur.y == r.req.Goal.Y {
			return r.reconstruct(cameFrom, cur.key), true, nil
		}
		if cur.t >= r.maxTick {
			continue
		}

		for _, d := range moves {
			nx, ny := cur.x+d[0], cur.y+d[1]
			nt := cur.t + 1

			if !r.admissible(cur.x, cur.y, nx, ny, nt) {
				continue
			}

			neighborKey := r.key(nx, ny, nt)
			tentativeG := cur.g + 1
			if prevG, ok := gScore[neighborKey]; ok && tentativeG >= prevG {
				continue
			}

			gScore[neighborKey] = tentativeG
			cameFrom[neighborKey] = cur.key
			heap.Push(open, &node{
				key: neighborKey,
				f:   tentativeG + r.heuristic(nx, ny),
				g:   tentativeG,
				t:   nt,
				x:   nx,
				y:   ny,
			})
		}
	}

	return nil, false, nil
}

func (r *runner) admissible(x, y, nx, ny, nt int) bool {
	if !r.g.InBounds(nx, ny) {
		return false
	}
	kind := r.g.Kind(nx, ny)
	if kind == grid.Wall {
		return false
	}
	if kind == grid.Exit && (nx != r.req.Goal.X || ny != r.req.Goal.Y) {
		return false
	}
	if kind == grid.Entry &&
		!(nx == r.req.Start.X && ny == r.req.Start.Y) &&
		!(nx == r.req.Goal.X && ny == r.req.Goal.Y) {
		return false
	}
	if _, ephemeral := r.req.Obstacles[grid.Position{X: nx, Y: ny}]; ephemeral && nt < r.persistUntil {
		return false
	}
	if !r.tbl.IsCellFree(nx, ny, nt) {
		return false
	}
	if !r.tbl.IsEdgeFree(x, y, nx, ny, nt-1) {
		return false
	}
	return true
}

func (r *runner) reconstruct(cameFrom map[int]int, goalKey int) Path {
	keys := []int{goalKey}
	for cur := goalKey; ; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		keys = append(keys, prev)
		cur = prev
	}
	// keys is goal -> start; reverse in place.
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}

	path := make(Path, len(keys))
	for i, k := range keys {
		x, y, t := r.unkey(k)
		path[i] = grid.TimedPosition{X: x, Y: y, T: t}
	}
	return path
}
