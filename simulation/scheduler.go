package simulation

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/parkinglot/car"
	"github.com/katalvlaran/parkinglot/grid"
	"github.com/katalvlaran/parkinglot/parking"
	"github.com/katalvlaran/parkinglot/reservation"
)

// Scheduler owns the whole mutable simulation state: the reservation
// table, the parking manager, every active/waiting car, and the single
// RNG stream. It is the Go analogue of core/simulation_core.py's
// SimulationCore class.
type Scheduler struct {
	g    *grid.Grid
	tbl  *reservation.Table
	mgr  *parking.Manager
	rng  *rand.Rand
	cfg  SimulationConfig
	opts Options

	active  map[car.ID]*car.Car
	waiting map[car.ID]*car.Car

	snapshot       Snapshot
	pendingRemoval map[car.ID]struct{}

	tick  int
	stats Stats
}

// NewScheduler builds a Scheduler from a grid and config, seeding its
// RNG stream and placing initial parked and initial active (waiting)
// cars. Returns ErrConfigurationError if cfg is structurally invalid.
//
// RNG consumption at construction: initial parked cars draw a uniform
// random free slot each (in car-index order), then initial active
// (waiting) cars draw a uniform random free slot each from what
// remains. Neither order is specified by spec.md (construction precedes
// any tick), so this order is a documented implementation choice — see
// DESIGN.md.
//
// Complexity: O(|parking_cells| + initial_parked_cars + initial_active_cars).
func NewScheduler(g *grid.Grid, cfg SimulationConfig, seed int64, opts ...Option) (*Scheduler, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mgr := parking.NewManager(g)
	tbl := reservation.New()
	rng := rngFromSeed(seed)

	totalInitial := cfg.InitialParkedCars + cfg.InitialActiveCars
	initialActiveCars := cfg.InitialActiveCars
	if totalInitial > len(mgr.ParkingCells()) {
		initialActiveCars = len(mgr.ParkingCells()) - cfg.InitialParkedCars
		if initialActiveCars < 0 {
			initialActiveCars = 0
		}
	}

	s := &Scheduler{
		g:              g,
		tbl:            tbl,
		mgr:            mgr,
		rng:            rng,
		cfg:            cfg,
		opts:           o,
		active:         make(map[car.ID]*car.Car),
		waiting:        make(map[car.ID]*car.Car),
		snapshot:       make(Snapshot),
		pendingRemoval: make(map[car.ID]struct{}),
	}

	for i := 0; i < cfg.InitialParkedCars; i++ {
		c, err := mgr.CreateParkedCar(rng)
		if err != nil {
			return nil, fmt.Errorf("%w: initial_parked_cars %d exceeds %d parking cells: %w",
				ErrConfigurationError, cfg.InitialParkedCars, len(mgr.ParkingCells()), err)
		}
		c.IsInitial = true
		tbl.ReserveGoal(c.CurrentPosition.X, c.CurrentPosition.Y, 0, cfg.GoalReserveHorizon)
		s.snapshot[c.CarID] = c.CurrentPosition
	}

	for i := 0; i < initialActiveCars; i++ {
		free := mgr.FreeSpots()
		if len(free) == 0 {
			break
		}
		idx := rng.Intn(len(free))
		spot := free[idx]
		mgr.RemoveFreeSpot(spot)

		c := mgr.CreateActiveCar(spot, car.Exit)
		c.IsInitial = true
		c.Waiting = true
		tbl.ReserveGoal(spot.X, spot.Y, 0, cfg.GoalReserveHorizon)
		s.waiting[c.CarID] = c
		s.snapshot[c.CarID] = c.CurrentPosition
	}

	return s, nil
}

// Snapshot returns a defensive copy of the current car_id -> position
// mapping (spec.md §6).
func (s *Scheduler) Snapshot() Snapshot {
	out := make(Snapshot, len(s.snapshot))
	for id, pos := range s.snapshot {
		out[id] = pos
	}
	return out
}

// Stats returns the running per-tick counters (spec.md §6).
func (s *Scheduler) Stats() Stats { return s.stats }

// Tick returns the current tick number.
func (s *Scheduler) Tick() int { return s.tick }

func (s *Scheduler) handleNewCar(c *car.Car) {
	s.active[c.CarID] = c
	s.snapshot[c.CarID] = c.CurrentPosition
}

func sortedCarIDs(m map[car.ID]*car.Car) []car.ID {
	ids := make([]car.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
