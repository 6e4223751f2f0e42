package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/parkinglot/simulation"
)

// LoadSimulationConfig reads a YAML document of the seven fields
// spec.md §6 lists and tolerantly coerces each into its target type via
// github.com/spf13/cast, so operators hand-editing YAML can write
// "0.3" or 30 interchangeably with 0.3 or "30". Missing keys default to
// their Go zero value; Validate (or NewScheduler) then reports that as
// a ConfigurationError where the zero value is invalid (e.g.
// planning_horizon).
//
// Complexity: O(1).
func LoadSimulationConfig(path string) (simulation.SimulationConfig, error) {
	var cfg simulation.SimulationConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading simulation config file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("config: parsing simulation config YAML: %w", err)
	}

	cfg.PlanningHorizon = cast.ToInt(raw["planning_horizon"])
	cfg.GoalReserveHorizon = cast.ToInt(raw["goal_reserve_horizon"])
	cfg.ArrivalLambda = cast.ToFloat64(raw["arrival_lambda"])
	cfg.MaxArrivingCars = cast.ToInt(raw["max_arriving_cars"])
	cfg.InitialParkedCars = cast.ToInt(raw["initial_parked_cars"])
	cfg.InitialActiveCars = cast.ToInt(raw["initial_active_cars"])
	cfg.InitialActiveExitRate = cast.ToFloat64(raw["initial_active_exit_rate"])

	return cfg, nil
}

// Validate wraps simulation.ValidateConfig so config-layer callers see
// the same ConfigurationError sentinel family used at Scheduler
// construction time.
func Validate(cfg simulation.SimulationConfig) error {
	return simulation.ValidateConfig(cfg)
}
