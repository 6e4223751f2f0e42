package parking

import (
	"errors"

	"github.com/katalvlaran/parkinglot/car"
	"github.com/katalvlaran/parkinglot/grid"
)

// ErrNoFreeSpots is returned by operations that require at least one
// free parking slot when none remain.
var ErrNoFreeSpots = errors.New("parking: no free spots available")

// Manager owns the parking-lot domain policy: the free/assigned/
// occupied slot partition, entry/exit cell references, and the
// monotonic car-id counter.
type Manager struct {
	parkingCells []grid.Position
	entryCells   []grid.Position
	exitCells    []grid.Position

	free      []grid.Position
	freeIndex map[grid.Position]int

	assigned map[car.ID]grid.Position
	occupied map[grid.Position]struct{}

	nextCarID car.ID
}
