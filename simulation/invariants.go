package simulation

import (
	"fmt"

	"github.com/katalvlaran/parkinglot/car"
	"github.com/katalvlaran/parkinglot/grid"
)

// checkInvariants asserts the seven per-tick invariants from spec.md §8,
// comparing the snapshot taken before this Step (before) to the current
// one. It is only invoked when the Scheduler was built
// WithInvariantChecks.
//
// Complexity: O(n^2) in the snapshot size for the pairwise collocation
// scan (invariants 1-3); acceptable for test-scale grids, never enabled
// by default in production wiring.
func (s *Scheduler) checkInvariants(t int, before Snapshot) error {
	if err := s.checkCollocationAndDrivability(); err != nil {
		return err
	}
	if err := s.checkStepBoundAndEdgeSwap(before); err != nil {
		return err
	}
	if err := s.checkExitAbsorbing(before); err != nil {
		return err
	}
	if err := s.checkParkingConservation(); err != nil {
		return err
	}
	if err := s.checkMonotonicity(); err != nil {
		return err
	}
	return nil
}

// checkCollocationAndDrivability covers invariants 1 (non-EXIT
// collocation forbidden) and 4 (all occupied cells drivable).
func (s *Scheduler) checkCollocationAndDrivability() error {
	byCell := make(map[grid.Position][]car.ID)
	for id, pos := range s.snapshot {
		if !s.g.Drivable(pos.X, pos.Y) {
			return fmt.Errorf("%w: car %d occupies non-drivable cell %v", ErrInvariantViolation, id, pos)
		}
		byCell[pos] = append(byCell[pos], id)
	}
	for pos, ids := range byCell {
		if len(ids) < 2 {
			continue
		}
		if s.g.Kind(pos.X, pos.Y) != grid.Exit {
			return fmt.Errorf("%w: cars %v collocated on non-exit cell %v", ErrInvariantViolation, ids, pos)
		}
	}
	return nil
}

// checkStepBoundAndEdgeSwap covers invariant 3 (|Δx|+|Δy| ∈ {0,1} for
// any car present before and after) and invariant 2 (no edge swap
// between a non-exit pair).
func (s *Scheduler) checkStepBoundAndEdgeSwap(before Snapshot) error {
	for id, prev := range before {
		cur, stillPresent := s.snapshot[id]
		if !stillPresent {
			continue // exited this tick; absorbing check covers this case
		}
		if d := grid.Manhattan(prev, cur); d > 1 {
			return fmt.Errorf("%w: car %d moved %d cells in one tick (%v -> %v)", ErrInvariantViolation, id, d, prev, cur)
		}
	}

	for idA, prevA := range before {
		curA, okA := s.snapshot[idA]
		if !okA {
			continue
		}
		for idB, prevB := range before {
			if idB <= idA {
				continue
			}
			curB, okB := s.snapshot[idB]
			if !okB {
				continue
			}
			if curA == prevB && curB == prevA && prevA != prevB {
				if s.g.Kind(prevA.X, prevA.Y) == grid.Exit || s.g.Kind(prevB.X, prevB.Y) == grid.Exit {
					continue
				}
				return fmt.Errorf("%w: cars %d and %d swapped positions %v <-> %v", ErrInvariantViolation, idA, idB, prevA, prevB)
			}
		}
	}
	return nil
}

// checkExitAbsorbing covers invariant 5: once a car occupies an EXIT
// cell, it either remains on an EXIT cell next tick or disappears from
// the snapshot.
func (s *Scheduler) checkExitAbsorbing(before Snapshot) error {
	for id, prev := range before {
		if s.g.Kind(prev.X, prev.Y) != grid.Exit {
			continue
		}
		cur, stillPresent := s.snapshot[id]
		if !stillPresent {
			continue
		}
		if s.g.Kind(cur.X, cur.Y) != grid.Exit {
			return fmt.Errorf("%w: car %d left an exit cell for non-exit %v without disappearing", ErrInvariantViolation, id, cur)
		}
	}
	return nil
}

// checkParkingConservation is a partial check of invariant 6 (free ∪
// assigned-values ∪ occupied partitions parking_cells): it verifies only
// that the free list has no duplicates and is no larger than
// parking_cells. Assigned and occupied slots are not inspected, so
// overlap between the three sets is not detected here.
func (s *Scheduler) checkParkingConservation() error {
	seen := make(map[grid.Position]struct{})
	for _, pos := range s.mgr.FreeSpots() {
		if _, dup := seen[pos]; dup {
			return fmt.Errorf("%w: parking slot %v appears twice across free/assigned/occupied", ErrInvariantViolation, pos)
		}
		seen[pos] = struct{}{}
	}
	total := len(s.mgr.ParkingCells())
	if len(seen) > total {
		return fmt.Errorf("%w: parking slot partition exceeds total parking cell count", ErrInvariantViolation)
	}
	return nil
}

// checkMonotonicity is a partial check of invariant 7 (run counters never
// decrease tick over tick): it verifies only that the counters are
// non-negative and does not compare them with the previous tick's
// values. Since Stats fields are only ever incremented by the
// scheduler, this is a defensive assertion against regressions rather
// than a condition expected to ever trip.
func (s *Scheduler) checkMonotonicity() error {
	if s.stats.TotalArrived < 0 || s.stats.TotalParked < 0 ||
		s.stats.TotalFailedPlans < 0 || s.stats.ArrivingCarsCreated < 0 {
		return fmt.Errorf("%w: a run counter went negative", ErrInvariantViolation)
	}
	return nil
}
