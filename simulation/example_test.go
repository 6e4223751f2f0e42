package simulation_test

import (
	"fmt"

	"github.com/katalvlaran/parkinglot/grid"
	"github.com/katalvlaran/parkinglot/simulation"
)

func ExampleScheduler_Run() {
	g, err := grid.New([][]grid.CellKind{
		{grid.Road, grid.Entry, grid.Road},
		{grid.Road, grid.Parking, grid.Road},
		{grid.Road, grid.Exit, grid.Road},
	})
	if err != nil {
		panic(err)
	}

	cfg := simulation.SimulationConfig{
		PlanningHorizon:       20,
		GoalReserveHorizon:    20,
		ArrivalLambda:         0,
		MaxArrivingCars:       0,
		InitialParkedCars:     0,
		InitialActiveCars:     1,
		InitialActiveExitRate: 1,
	}

	sched, err := simulation.NewScheduler(g, cfg, 1)
	if err != nil {
		panic(err)
	}

	result, err := sched.Run(50)
	if err != nil {
		panic(err)
	}

	fmt.Printf("status=%s exited=%d\n", result.Status, result.Stats.InitialActiveCarsExitedCount)
	// Output: status=COMPLETED exited=1
}
