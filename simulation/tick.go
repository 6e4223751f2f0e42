package simulation

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/parkinglot/car"
	"github.com/katalvlaran/parkinglot/grid"
)

// Step runs one tick of the five-step protocol (spec.md §4.5): cleanup,
// wake-ups, advance, arrivals, increment. Returns ErrInvariantViolation
// if the Scheduler was built WithInvariantChecks and a post-step
// invariant fails; such a violation indicates a bug, never an expected
// condition.
//
// Complexity: see doc.go.
func (s *Scheduler) Step() error {
	t := s.tick
	before := s.Snapshot()

	s.cleanup()
	s.wakeWaitingCars(t)
	s.advance(t)
	s.processArrivals(t)

	s.tick++

	if s.opts.invariantChecks {
		if err := s.checkInvariants(t, before); err != nil {
			s.opts.logger.Error(t, "invariant violation", zap.Error(err))
			return err
		}
	}
	return nil
}

// Run drives Step until the active set (active cars plus waiting cars —
// see DESIGN.md's Open Question decision on termination) is empty and no
// further arrivals can occur (spec.md §4.5.4), or until maxSteps ticks
// have run, whichever comes first. maxSteps <= 0 means unbounded.
func (s *Scheduler) Run(maxSteps int) (RunResult, error) {
	for steps := 0; ; steps++ {
		if s.isTerminated() {
			return RunResult{FinalTime: s.tick, Status: Completed, Stats: s.stats}, nil
		}
		if maxSteps > 0 && steps >= maxSteps {
			return RunResult{FinalTime: s.tick, Status: MaxStepsReached, Stats: s.stats}, nil
		}
		if err := s.Step(); err != nil {
			return RunResult{FinalTime: s.tick, Status: MaxStepsReached, Stats: s.stats}, err
		}
	}
}

func (s *Scheduler) isTerminated() bool {
	return len(s.active) == 0 && len(s.waiting) == 0 &&
		(s.stats.ArrivingCarsCreated >= s.cfg.MaxArrivingCars || s.cfg.ArrivalLambda == 0)
}

// cleanup removes cars that exited on the previous tick from the
// published snapshot (spec.md §4.5 step 1).
func (s *Scheduler) cleanup() {
	for id := range s.pendingRemoval {
		delete(s.snapshot, id)
		delete(s.pendingRemoval, id)
	}
}

// wakeWaitingCars independently wakes each waiting initial-EXIT car with
// probability initial_active_exit_rate (spec.md §4.5 step 2), in
// ascending car-id order for deterministic RNG consumption.
func (s *Scheduler) wakeWaitingCars(t int) {
	ids := sortedCarIDs(s.waiting)
	for _, id := range ids {
		if !bernoulli(s.rng, s.cfg.InitialActiveExitRate) {
			continue
		}
		c := s.waiting[id]
		s.tbl.UnreserveGoal(c.CurrentPosition.X, c.CurrentPosition.Y)
		s.mgr.AddFreeSpot(c.CurrentPosition)
		delete(s.waiting, id)
		c.Waiting = false
		s.opts.logger.Info(t, "car woken", simlogCarFields(c, "wake")...)
		s.handleNewCar(c)
	}
}

// processArrivals implements spec.md §4.5 step 4 and §4.5.2. The RNG
// consumption order (spec.md §5) gates the arrival Bernoulli draw
// strictly before the entry-cell shuffle: only a successful Bernoulli
// draw causes an entry-cell search, and the search always consumes the
// shuffle draws even if no admissible cell is ultimately found.
func (s *Scheduler) processArrivals(t int) {
	if s.stats.ArrivingCarsCreated >= s.cfg.MaxArrivingCars || s.mgr.NumFree() == 0 {
		return
	}
	if !bernoulli(s.rng, s.cfg.ArrivalLambda) {
		return
	}
	entry, ok := s.admitEntryCell(t + 1)
	if !ok {
		return
	}

	c := s.mgr.CreateActiveCar(entry, car.Park)
	c.SpawnTime = t
	s.stats.ArrivingCarsCreated++
	s.opts.logger.Info(t, "car arrived", simlogCarFields(c, "spawn")...)
	s.handleNewCar(c)
}

// admitEntryCell implements spec.md §4.5.2: shuffle all entry cells and
// return the first one that is not currently occupied and is free in
// the reservation table for the next entryCheckHorizon ticks starting at
// startTime.
func (s *Scheduler) admitEntryCell(startTime int) (grid.Position, bool) {
	entries := s.mgr.EntryCells()
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	shuffleEntries(s.rng, order)

	for _, i := range order {
		cell := entries[i]
		if s.occupiedInSnapshot(cell) {
			continue
		}
		free := true
		for tick := startTime; tick < startTime+entryCheckHorizon; tick++ {
			if !s.tbl.IsCellFree(cell.X, cell.Y, tick) {
				free = false
				break
			}
		}
		if free {
			return cell, true
		}
	}
	return grid.Position{}, false
}

func (s *Scheduler) occupiedInSnapshot(pos grid.Position) bool {
	for _, p := range s.snapshot {
		if p == pos {
			return true
		}
	}
	return false
}

func simlogCarFields(c *car.Car, event string) []zap.Field {
	return []zap.Field{zap.Int("car_id", int(c.CarID)), zap.String("event", event)}
}
