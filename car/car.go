package car

import "github.com/katalvlaran/parkinglot/grid"

// HasGoal reports whether the car has been assigned a goal position.
func (c *Car) HasGoal() bool { return c.Goal != nil }

// HasPath reports whether the car currently holds a non-empty plan.
func (c *Car) HasPath() bool { return len(c.Path) > 0 }

// IsFinished reports whether the car has consumed its entire path.
func (c *Car) IsFinished() bool { return c.PathCursor >= len(c.Path) }

// IsArrived reports whether the car has finished its path and stands on
// its goal.
func (c *Car) IsArrived() bool {
	return c.IsFinished() && c.HasGoal() && c.CurrentPosition == *c.Goal
}

// IsUnplanned reports whether the car is active but holds no path.
func (c *Car) IsUnplanned() bool { return !c.Waiting && !c.HasPath() }

// IsPlanned reports whether the car holds a path it has not yet
// finished consuming.
func (c *Car) IsPlanned() bool { return c.HasPath() && !c.IsFinished() }

// SetPath installs a freshly planned path and resets the cursor to its
// start.
func (c *Car) SetPath(path []grid.TimedPosition) {
	c.Path = path
	c.PathCursor = 0
}

// ClearPath discards the current path and resets the cursor, forcing a
// replan. Also used for the degenerate case where a car finished its
// path without reaching its goal (spec.md §9 Open Question): the
// scheduler calls ClearPath to force a fresh plan next tick.
func (c *Car) ClearPath() {
	c.Path = nil
	c.PathCursor = 0
}

// fastForward advances idx past any path entries whose tick is strictly
// before targetTime, without mutating the car.
func (c *Car) fastForward(idx, targetTime int) int {
	for idx < len(c.Path) && c.Path[idx].T < targetTime {
		idx++
	}
	return idx
}

// PeekNext reports the position the car intends to occupy at now+1,
// without mutating any state. If the next unconsumed path entry lands
// exactly on now+1, that entry's position is returned; otherwise (a
// future entry, or an exhausted path) the car's current position is
// returned, meaning "intends to stay".
//
// Complexity: amortized O(1) across a run (see doc.go).
func (c *Car) PeekNext(now int) grid.Position {
	target := now + 1
	idx := c.fastForward(c.PathCursor, target)
	if idx < len(c.Path) && c.Path[idx].T == target {
		return c.Path[idx].Pos()
	}
	return c.CurrentPosition
}

// Advance commits the car to the position its plan calls for at now+1,
// mutating CurrentPosition and PathCursor. It returns the new position
// and whether the car actually moved (false if it stayed put, including
// a pure wait-step consumption). Callers must only invoke Advance after
// conflict resolution confirms the move is safe to commit.
//
// Complexity: amortized O(1).
func (c *Car) Advance(now int) (grid.Position, bool) {
	target := now + 1
	c.PathCursor = c.fastForward(c.PathCursor, target)
	if c.PathCursor < len(c.Path) && c.Path[c.PathCursor].T == target {
		pos := c.Path[c.PathCursor].Pos()
		moved := pos != c.CurrentPosition
		c.CurrentPosition = pos
		c.PathCursor++
		return pos, moved
	}
	return c.CurrentPosition, false
}

// ConsumeWaitStep advances the cursor past a path entry that matches the
// car's current position and tick, without changing CurrentPosition.
// This handles the "wanted to stay, and did" branch of the tick
// protocol (spec.md §4.5.1(d)), where the plan includes an explicit wait
// entry that must still be consumed.
func (c *Car) ConsumeWaitStep(now int) {
	target := now + 1
	c.PathCursor = c.fastForward(c.PathCursor, target)
	if c.PathCursor < len(c.Path) && c.Path[c.PathCursor].T == target && c.Path[c.PathCursor].Pos() == c.CurrentPosition {
		c.PathCursor++
	}
}
