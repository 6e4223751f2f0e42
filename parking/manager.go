package parking

import (
	"math/rand"

	"github.com/katalvlaran/parkinglot/car"
	"github.com/katalvlaran/parkinglot/grid"
)

// NewManager builds a Manager seeded from a grid's derived cell sets.
// All parking cells start free; no car ids have been minted yet.
//
// Complexity: O(|parking_cells|).
func NewManager(g *grid.Grid) *Manager {
	parkingCells := append([]grid.Position(nil), g.ParkingCells()...)
	free := append([]grid.Position(nil), parkingCells...)
	freeIndex := make(map[grid.Position]int, len(free))
	for i, p := range free {
		freeIndex[p] = i
	}

	return &Manager{
		parkingCells: parkingCells,
		entryCells:   append([]grid.Position(nil), g.EntryCells()...),
		exitCells:    append([]grid.Position(nil), g.ExitCells()...),
		free:         free,
		freeIndex:    freeIndex,
		assigned:     make(map[car.ID]grid.Position),
		occupied:     make(map[grid.Position]struct{}),
	}
}

// ParkingCells returns every parking cell the lot has, regardless of
// current occupancy.
func (m *Manager) ParkingCells() []grid.Position { return m.parkingCells }

// EntryCells returns every entry cell the lot has.
func (m *Manager) EntryCells() []grid.Position { return m.entryCells }

// ExitCells returns every exit cell the lot has.
func (m *Manager) ExitCells() []grid.Position { return m.exitCells }

// FreeSpots returns the currently free parking slots, in stable
// iteration order (insertion order modulo swap-removal), so that
// tie-breaks in AssignGoal are reproducible across runs with the same
// seed (spec.md §4.4: "ties broken by iteration order").
func (m *Manager) FreeSpots() []grid.Position {
	return append([]grid.Position(nil), m.free...)
}

// NumFree reports how many parking slots are currently free.
func (m *Manager) NumFree() int { return len(m.free) }

// IsOccupied reports whether pos currently holds a parked car.
func (m *Manager) IsOccupied(pos grid.Position) bool {
	_, ok := m.occupied[pos]
	return ok
}

func (m *Manager) removeFree(pos grid.Position) bool {
	idx, ok := m.freeIndex[pos]
	if !ok {
		return false
	}
	last := len(m.free) - 1
	m.free[idx] = m.free[last]
	m.freeIndex[m.free[idx]] = idx
	m.free = m.free[:last]
	delete(m.freeIndex, pos)
	return true
}

func (m *Manager) addFree(pos grid.Position) {
	if _, ok := m.freeIndex[pos]; ok {
		return
	}
	m.freeIndex[pos] = len(m.free)
	m.free = append(m.free, pos)
}

// RemoveFreeSpot consumes a free spot directly without minting a parked
// car, used by the scheduler to pin an initial active-EXIT car onto a
// parking slot while it waits to be woken (spec.md §4.5 step 2 and the
// initialization path in simulation). Reports false if pos was not free.
func (m *Manager) RemoveFreeSpot(pos grid.Position) bool {
	return m.removeFree(pos)
}

// AddFreeSpot returns a slot to the free set directly, used when a
// waiting car wakes up and releases the static hold on its pinned slot.
func (m *Manager) AddFreeSpot(pos grid.Position) {
	m.addFree(pos)
}

// NextCarID mints and returns a fresh, strictly increasing car id.
func (m *Manager) NextCarID() car.ID {
	id := m.nextCarID
	m.nextCarID++
	return id
}

// CreateActiveCar mints a new Car at start with the given intent. It
// does not touch any slot set.
//
// Complexity: O(1).
func (m *Manager) CreateActiveCar(start grid.Position, intent car.Intent) *car.Car {
	return car.New(m.NextCarID(), start, intent)
}

// CreateParkedCar picks a uniformly random free slot via rng, converts
// it to occupied, and returns a Car whose goal and current position are
// that slot with Intent left as car.None (the car is already parked; it
// has no further objective).
//
// Returns ErrNoFreeSpots if no free slot remains.
//
// Complexity: O(1).
func (m *Manager) CreateParkedCar(rng *rand.Rand) (*car.Car, error) {
	if len(m.free) == 0 {
		return nil, ErrNoFreeSpots
	}
	idx := rng.Intn(len(m.free))
	spot := m.free[idx]
	m.removeFree(spot)
	m.occupied[spot] = struct{}{}

	c := car.New(m.NextCarID(), spot, car.None)
	goal := spot
	c.Goal = &goal
	return c, nil
}

// AssignGoal picks a goal for c according to its Intent:
//
//   - Park: the free slot minimizing Manhattan distance from
//     c.CurrentPosition, ties broken by FreeSpots' iteration order;
//     the slot moves from free to assigned.
//   - Exit: the exit cell minimizing Manhattan distance; exit cells are
//     never consumed.
//   - None: returns nil.
//
// Complexity: O(|FreeSpots|) or O(|ExitCells|).
func (m *Manager) AssignGoal(c *car.Car) *grid.Position {
	switch c.Intent {
	case car.Park:
		return m.chooseFreeParkingSpot(c)
	case car.Exit:
		return m.chooseExitCell(c)
	default:
		return nil
	}
}

func (m *Manager) chooseFreeParkingSpot(c *car.Car) *grid.Position {
	if len(m.free) == 0 {
		return nil
	}
	best := m.free[0]
	bestDist := grid.Manhattan(best, c.CurrentPosition)
	for _, spot := range m.free[1:] {
		d := grid.Manhattan(spot, c.CurrentPosition)
		if d < bestDist {
			best, bestDist = spot, d
		}
	}
	m.removeFree(best)
	m.assigned[c.CarID] = best
	return &best
}

func (m *Manager) chooseExitCell(c *car.Car) *grid.Position {
	if len(m.exitCells) == 0 {
		return nil
	}
	best := m.exitCells[0]
	bestDist := grid.Manhattan(best, c.CurrentPosition)
	for _, cell := range m.exitCells[1:] {
		d := grid.Manhattan(cell, c.CurrentPosition)
		if d < bestDist {
			best, bestDist = cell, d
		}
	}
	return &best
}

// MarkOccupied moves spot from assigned to occupied for car id
// c.CarID, marking it as permanently held by a parked car.
//
// Complexity: O(1).
func (m *Manager) MarkOccupied(c *car.Car, spot grid.Position) {
	delete(m.assigned, c.CarID)
	m.occupied[spot] = struct{}{}
}

// ReleaseAssignedSpot returns carID's assigned-but-not-yet-occupied slot
// to the free set. No-op if carID has no assigned slot.
//
// Complexity: O(1).
func (m *Manager) ReleaseAssignedSpot(carID car.ID) {
	spot, ok := m.assigned[carID]
	if !ok {
		return
	}
	delete(m.assigned, carID)
	if _, occ := m.occupied[spot]; !occ {
		m.addFree(spot)
	}
}
