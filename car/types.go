package car

import "github.com/katalvlaran/parkinglot/grid"

// Intent is a car's current objective class.
type Intent int

const (
	// None means the car has not yet been assigned an objective.
	None Intent = iota
	// Park means the car is seeking a parking slot.
	Park
	// Exit means the car is seeking an exit cell.
	Exit
)

// String renders an Intent for logs.
func (i Intent) String() string {
	switch i {
	case Park:
		return "PARK"
	case Exit:
		return "EXIT"
	default:
		return "NONE"
	}
}

// ID is a car's unique, monotonically assigned identity.
type ID int

// Car is one simulated agent. Identity and spawn-time fields are
// immutable for the car's life; the rest mutates as the scheduler
// drives it through plan/advance/replan cycles.
//
// Apart from the scheduler-owned Waiting flag, lifecycle state is not
// stored explicitly — see IsUnplanned, IsPlanned, IsArrived, etc. in
// car.go — to avoid a second source of truth that could drift from
// Path/PathCursor.
type Car struct {
	CarID     ID
	SpawnTime int
	IsInitial bool

	CurrentPosition grid.Position
	Intent          Intent
	Goal            *grid.Position
	Path            []grid.TimedPosition
	PathCursor      int

	PlanFailCount    int
	BlockedCount     int
	LastPlanFailTime int

	// Waiting marks an initial EXIT car that has not yet been woken from
	// its pinned parking slot (spec.md §3 "Waiting" state). Scheduler-
	// owned; the car itself does not interpret this flag.
	Waiting bool

	// ParkTime/ExitTime record the tick a car reached its goal, used to
	// compute spec.md §6's sum_steps_to_park/sum_steps_to_exit. Not named
	// in spec.md's Car field list but required to derive those stats;
	// see SPEC_FULL.md §3.
	ParkTime *int
	ExitTime *int

	// Priority is carried for forward compatibility with the original
	// implementation's unused per-car priority field; no current policy
	// reads it.
	Priority int
}

// New constructs a Car with the given id, start position, and intent.
// Goal, path, and failure counters start at their zero values.
func New(id ID, start grid.Position, intent Intent) *Car {
	return &Car{
		CarID:           id,
		CurrentPosition: start,
		Intent:          intent,
	}
}
