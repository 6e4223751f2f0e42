package simulation

import (
	"github.com/katalvlaran/parkinglot/car"
	"github.com/katalvlaran/parkinglot/grid"
)

// entryCheckHorizon is the fixed spatio-temporal lookahead used by entry
// admission (spec.md §4.5.2): an entry cell is only admissible if free
// in the reservation table for this many upcoming ticks.
const entryCheckHorizon = 20

// obstaclePersistenceMin and obstaclePersistenceMax bound the uniform
// random draw used for each unplanned car's ephemeral-obstacle
// persistence window (spec.md §4.5.1(a)).
const (
	obstaclePersistenceMin = 10
	obstaclePersistenceMax = 30
)

// Failure-escalation thresholds (spec.md §4.5.3), applied identically
// to plan_fail_count and blocked_count.
const (
	exitReRandomizeEvery  = 5
	parkReleaseSlotEvery  = 3
	parkToExitConvertedAt = 12
)

// SimulationConfig is the set of run parameters spec.md §6 lists. All
// fields are required; ValidateConfig enforces their domain constraints.
type SimulationConfig struct {
	PlanningHorizon        int     `yaml:"planning_horizon"`
	GoalReserveHorizon     int     `yaml:"goal_reserve_horizon"`
	ArrivalLambda          float64 `yaml:"arrival_lambda"`
	MaxArrivingCars        int     `yaml:"max_arriving_cars"`
	InitialParkedCars      int     `yaml:"initial_parked_cars"`
	InitialActiveCars      int     `yaml:"initial_active_cars"`
	InitialActiveExitRate  float64 `yaml:"initial_active_exit_rate"`
}

// Status is a RunResult's terminal classification.
type Status int

const (
	// Completed means the active set emptied and no further arrivals
	// could occur (spec.md §4.5.4).
	Completed Status = iota
	// MaxStepsReached means Run's step budget was exhausted before the
	// natural termination condition held.
	MaxStepsReached
)

// String renders a Status for logs and JSON-adjacent debug output.
func (s Status) String() string {
	if s == Completed {
		return "COMPLETED"
	}
	return "MAX_STEPS_REACHED"
}

// Snapshot is the per-tick car_id -> position mapping spec.md §6
// describes, including cars pending removal (exited last tick) for
// exactly the one tick in which they were visible as EXIT-absorbed.
type Snapshot map[car.ID]grid.Position

// Stats are the per-tick running counters spec.md §6 names. Average
// step counts are derived as sum/count by callers when count > 0.
type Stats struct {
	TotalArrived                  int `json:"total_arrived"`
	TotalPlanned                  int `json:"total_planned"`
	TotalFailedPlans              int `json:"total_failed_plans"`
	TotalParked                   int `json:"total_parked"`
	ArrivingCarsCreated            int `json:"arriving_cars_created"`
	ArrivingCarsParkedCount        int `json:"arriving_cars_parked_count"`
	InitialActiveCarsExitedCount   int `json:"initial_active_cars_exited_count"`
	SumStepsToPark                 int `json:"sum_steps_to_park"`
	SumStepsToExit                  int `json:"sum_steps_to_exit"`
}

// RunResult is the final outcome a completed or budget-exhausted Run
// returns (spec.md §6, "Run summary").
type RunResult struct {
	FinalTime int    `json:"final_time"`
	Status    Status `json:"status"`
	Stats     Stats  `json:"stats"`
}
