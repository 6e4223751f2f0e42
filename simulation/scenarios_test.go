package simulation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parkinglot/simulation"
)

// S1: Pure evacuation. All initial-active (waiting) cars eventually
// exit; no parking occurs.
func TestScenario_S1_PureEvacuation(t *testing.T) {
	g := buildScenarioGrid(t, 20, 10, 2, 2, 55)
	cfg := simulation.SimulationConfig{
		PlanningHorizon:       100,
		GoalReserveHorizon:    50,
		ArrivalLambda:         0,
		MaxArrivingCars:       0,
		InitialParkedCars:     0,
		InitialActiveCars:     10,
		InitialActiveExitRate: 0.3,
	}
	sched, err := simulation.NewScheduler(g, cfg, 42, simulation.WithInvariantChecks())
	require.NoError(t, err)

	result, err := sched.Run(5000)
	require.NoError(t, err)
	require.Equal(t, simulation.Completed, result.Status)
	require.Equal(t, 10, result.Stats.TotalArrived)
	require.Equal(t, 0, result.Stats.TotalParked)
	require.Equal(t, 10, result.Stats.InitialActiveCarsExitedCount)
}

// S2: Parking only. All arrivals eventually park.
func TestScenario_S2_ParkingOnly(t *testing.T) {
	g := buildScenarioGrid(t, 20, 10, 2, 2, 55)
	cfg := simulation.SimulationConfig{
		PlanningHorizon:       100,
		GoalReserveHorizon:    50,
		ArrivalLambda:         0.3,
		MaxArrivingCars:       55,
		InitialParkedCars:     0,
		InitialActiveCars:     0,
		InitialActiveExitRate: 0,
	}
	sched, err := simulation.NewScheduler(g, cfg, 43, simulation.WithInvariantChecks())
	require.NoError(t, err)

	result, err := sched.Run(20000)
	require.NoError(t, err)
	require.Equal(t, simulation.Completed, result.Status)
	require.Equal(t, 55, result.Stats.ArrivingCarsCreated)
	require.Equal(t, 55, result.Stats.TotalParked)
}

// S3: Mixed load. Initial-active cars exit; arrivals park or convert to
// EXIT and depart.
func TestScenario_S3_MixedLoad(t *testing.T) {
	g := buildScenarioGrid(t, 20, 10, 2, 2, 55)
	cfg := simulation.SimulationConfig{
		PlanningHorizon:       100,
		GoalReserveHorizon:    50,
		ArrivalLambda:         0.2,
		MaxArrivingCars:       20,
		InitialParkedCars:     10,
		InitialActiveCars:     10,
		InitialActiveExitRate: 0.3,
	}
	sched, err := simulation.NewScheduler(g, cfg, 44, simulation.WithInvariantChecks())
	require.NoError(t, err)

	result, err := sched.Run(20000)
	require.NoError(t, err)
	require.Equal(t, simulation.Completed, result.Status)
	require.Equal(t, 20, result.Stats.ArrivingCarsCreated)
	require.Equal(t, 10, result.Stats.InitialActiveCarsExitedCount)
	require.Equal(t, result.Stats.ArrivingCarsCreated,
		result.Stats.ArrivingCarsParkedCount+(result.Stats.TotalArrived-result.Stats.InitialActiveCarsExitedCount),
		"every arrival either parks or converts to EXIT and departs")
}

// S4: Small grid congestion. No tick shows two non-exit colocations —
// enforced throughout by WithInvariantChecks.
func TestScenario_S4_SmallGridCongestion(t *testing.T) {
	g := buildScenarioGrid(t, 10, 10, 1, 1, 10)
	cfg := simulation.SimulationConfig{
		PlanningHorizon:       50,
		GoalReserveHorizon:    30,
		ArrivalLambda:         0.5,
		MaxArrivingCars:       8,
		InitialParkedCars:     2,
		InitialActiveCars:     0,
		InitialActiveExitRate: 0,
	}
	sched, err := simulation.NewScheduler(g, cfg, 101, simulation.WithInvariantChecks())
	require.NoError(t, err)

	_, err = sched.Run(5000)
	require.NoError(t, err, "invariant violations surface as an error from Run/Step")
}
