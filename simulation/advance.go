package simulation

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/parkinglot/car"
	"github.com/katalvlaran/parkinglot/grid"
	"github.com/katalvlaran/parkinglot/planner"
)

// advance runs spec.md §4.5.1: plan the unplanned, compute intended
// positions, resolve conflicts to a fixpoint, and commit.
func (s *Scheduler) advance(t int) {
	s.planUnplanned(t)

	intended, current, ids := s.computeIntended(t)
	final := make(map[car.ID]grid.Position, len(intended))
	for id, pos := range intended {
		final[id] = pos
	}
	s.resolveConflicts(final, current, ids)
	s.commit(t, intended, final, ids)
}

// planUnplanned implements spec.md §4.5.1(a).
func (s *Scheduler) planUnplanned(t int) {
	var unplanned []*car.Car
	for _, id := range sortedCarIDs(s.active) {
		c := s.active[id]
		if c.IsUnplanned() {
			unplanned = append(unplanned, c)
		}
	}

	sort.SliceStable(unplanned, func(i, j int) bool {
		ci, cj := unplanned[i], unplanned[j]
		di, hasI := distanceToGoal(ci)
		dj, hasJ := distanceToGoal(cj)
		if hasI != hasJ {
			return hasI // cars with a goal sort before cars without one
		}
		if !hasI {
			return ci.CarID < cj.CarID
		}
		if di != dj {
			return di < dj
		}
		return ci.CarID < cj.CarID
	})

	for _, c := range unplanned {
		if !c.HasGoal() {
			goal := s.mgr.AssignGoal(c)
			if goal == nil {
				continue
			}
			c.Goal = goal
		}

		obstacles := s.ephemeralObstacles(c)
		persistence := uniformInt(s.rng, obstaclePersistenceMin, obstaclePersistenceMax)

		req := planner.Request{
			Start:               c.CurrentPosition,
			StartTime:           t,
			Goal:                *c.Goal,
			Horizon:             s.cfg.PlanningHorizon,
			Obstacles:           obstacles,
			ObstaclePersistence: persistence,
		}
		path, found, err := planner.Plan(s.g, s.tbl, req)
		if err != nil {
			s.opts.logger.Error(t, "malformed plan request", zap.Int("car_id", int(c.CarID)), zap.Error(err))
			continue
		}
		if !found {
			s.stats.TotalFailedPlans++
			c.PlanFailCount++
			c.LastPlanFailTime = t
			s.applyEscalation(c, c.PlanFailCount)
			continue
		}

		c.SetPath([]grid.TimedPosition(path))
		s.tbl.ReservePath(path)
		c.PlanFailCount = 0
		s.stats.TotalPlanned++
	}
}

func distanceToGoal(c *car.Car) (int, bool) {
	if !c.HasGoal() {
		return 0, false
	}
	return grid.Manhattan(c.CurrentPosition, *c.Goal), true
}

// ephemeralObstacles collects the current positions of every other
// active, unplanned car (spec.md §4.5.1(a)).
func (s *Scheduler) ephemeralObstacles(self *car.Car) map[grid.Position]struct{} {
	obstacles := make(map[grid.Position]struct{})
	for _, other := range s.active {
		if other.CarID == self.CarID {
			continue
		}
		if other.IsUnplanned() {
			obstacles[other.CurrentPosition] = struct{}{}
		}
	}
	return obstacles
}

// applyEscalation implements spec.md §4.5.3, applied identically whether
// count is plan_fail_count or blocked_count.
func (s *Scheduler) applyEscalation(c *car.Car, count int) {
	switch c.Intent {
	case car.Exit:
		if count%exitReRandomizeEvery == 0 {
			exits := s.mgr.ExitCells()
			if len(exits) > 0 {
				goal := exits[s.rng.Intn(len(exits))]
				c.Goal = &goal
				s.opts.logger.Warn(s.tick, "exit goal re-randomized", simlogCarFields(c, "escalation")...)
			}
		}
	case car.Park:
		if count%parkReleaseSlotEvery == 0 {
			s.mgr.ReleaseAssignedSpot(c.CarID)
			c.Goal = nil
			s.opts.logger.Warn(s.tick, "parking slot released", simlogCarFields(c, "escalation")...)
		}
		if count >= parkToExitConvertedAt {
			s.mgr.ReleaseAssignedSpot(c.CarID)
			c.Intent = car.Exit
			c.Goal = s.mgr.AssignGoal(c)
			s.opts.logger.Warn(s.tick, "intent converted to exit", simlogCarFields(c, "escalation")...)
		}
	}
}

// computeIntended implements spec.md §4.5.1(b) for every active car.
func (s *Scheduler) computeIntended(t int) (intended, current map[car.ID]grid.Position, ids []car.ID) {
	ids = sortedCarIDs(s.active)
	intended = make(map[car.ID]grid.Position, len(ids))
	current = make(map[car.ID]grid.Position, len(ids))
	for _, id := range ids {
		c := s.active[id]
		current[id] = c.CurrentPosition
		intended[id] = c.PeekNext(t)
	}
	return intended, current, ids
}

// resolveConflicts implements spec.md §4.5.1(c): iterate vertex-conflict
// and edge-swap resolution to a fixpoint.
func (s *Scheduler) resolveConflicts(final, current map[car.ID]grid.Position, ids []car.ID) {
	for {
		changed := false

		byCell := make(map[grid.Position][]car.ID)
		for _, id := range ids {
			cell := final[id]
			byCell[cell] = append(byCell[cell], id)
		}
		for cell, group := range byCell {
			if len(group) < 2 {
				continue
			}
			winner := group[0]
			hasStayer := false
			for _, id := range group {
				if current[id] == cell {
					winner = id
					hasStayer = true
					break
				}
			}
			if !hasStayer {
				for _, id := range group {
					if id < winner {
						winner = id
					}
				}
			}
			for _, id := range group {
				if id != winner && final[id] != current[id] {
					final[id] = current[id]
					changed = true
				}
			}
		}

		for i, a := range ids {
			for _, b := range ids[i+1:] {
				if current[a] == current[b] {
					continue
				}
				if final[a] == current[b] && final[b] == current[a] {
					if final[a] != current[a] {
						final[a] = current[a]
						changed = true
					}
					if final[b] != current[b] {
						final[b] = current[b]
						changed = true
					}
				}
			}
		}

		if !changed {
			return
		}
	}
}

// commit implements spec.md §4.5.1(d).
func (s *Scheduler) commit(t int, intended, final map[car.ID]grid.Position, ids []car.ID) {
	for _, id := range ids {
		c, ok := s.active[id]
		if !ok {
			continue // defensive: ids was taken before commit started
		}
		wantedPos := intended[id]
		finalPos := final[id]
		currentPos := c.CurrentPosition

		if finalPos != currentPos {
			newPos, _ := c.Advance(t)
			c.BlockedCount = 0
			s.snapshot[id] = newPos

			if c.IsFinished() && !c.IsArrived() {
				// Degenerate case (spec.md §9 Open Question): the path ran
				// out without reaching the goal. Force a replan rather than
				// leaving the car stuck on a stale path.
				c.ClearPath()
				continue
			}
			if c.IsArrived() {
				s.completeGoal(t, c)
			}
			continue
		}

		if wantedPos != currentPos {
			// Blocked: the car wanted to move but conflict resolution
			// reverted it. Cancel the plan and escalate.
			s.tbl.UnreservePath([]grid.TimedPosition(c.Path))
			c.ClearPath()
			c.BlockedCount++
			s.applyEscalation(c, c.BlockedCount)
		} else {
			c.ConsumeWaitStep(t)
		}
	}
}

// completeGoal handles a car reaching its goal this tick (spec.md
// §4.5.1(d) sub-bullets for PARK and EXIT).
func (s *Scheduler) completeGoal(t int, c *car.Car) {
	arriveTime := t + 1
	s.tbl.UnreservePath([]grid.TimedPosition(c.Path))

	switch c.Intent {
	case car.Park:
		s.mgr.MarkOccupied(c, *c.Goal)
		s.tbl.ReserveGoal(c.Goal.X, c.Goal.Y, arriveTime, s.cfg.GoalReserveHorizon)
		parkTime := arriveTime
		c.ParkTime = &parkTime
		s.stats.TotalParked++
		if !c.IsInitial {
			s.stats.ArrivingCarsParkedCount++
		}
		s.stats.SumStepsToPark += parkTime - c.SpawnTime
		delete(s.active, c.CarID)
		s.opts.logger.Info(t, "car parked", zap.Int("car_id", int(c.CarID)))

	case car.Exit:
		exitTime := arriveTime
		c.ExitTime = &exitTime
		s.stats.TotalArrived++
		if c.IsInitial {
			s.stats.InitialActiveCarsExitedCount++
		}
		s.stats.SumStepsToExit += exitTime - c.SpawnTime
		delete(s.active, c.CarID)
		s.pendingRemoval[c.CarID] = struct{}{}
		s.opts.logger.Info(t, "car exited", zap.Int("car_id", int(c.CarID)))
	}
}
