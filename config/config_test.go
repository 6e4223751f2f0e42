package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parkinglot/config"
	"github.com/katalvlaran/parkinglot/grid"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadGrid_ValidDocument(t *testing.T) {
	path := writeTemp(t, "grid.yaml", `
width: 3
height: 3
kinds:
  - ["R", "N", "R"]
  - ["R", "P", "R"]
  - ["R", "X", "R"]
`)
	g, err := config.LoadGrid(path)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 3, g.Height())
	require.Equal(t, grid.Entry, g.Kind(1, 0))
	require.Equal(t, grid.Exit, g.Kind(1, 2))
	require.Equal(t, grid.Parking, g.Kind(1, 1))
}

func TestLoadGrid_InvalidCellCode(t *testing.T) {
	path := writeTemp(t, "grid.yaml", `
width: 1
height: 1
kinds:
  - ["Q"]
`)
	_, err := config.LoadGrid(path)
	require.ErrorIs(t, err, config.ErrInvalidCellCode)
}

func TestLoadGrid_RowCountMismatch(t *testing.T) {
	path := writeTemp(t, "grid.yaml", `
width: 2
height: 2
kinds:
  - ["R", "R"]
`)
	_, err := config.LoadGrid(path)
	require.ErrorIs(t, err, config.ErrConfigurationError)
}

func TestLoadSimulationConfig_CoercesLooseTypes(t *testing.T) {
	path := writeTemp(t, "sim.yaml", `
planning_horizon: "100"
goal_reserve_horizon: 50
arrival_lambda: "0.3"
max_arriving_cars: 55
initial_parked_cars: 0
initial_active_cars: 10
initial_active_exit_rate: 0.2
`)
	cfg, err := config.LoadSimulationConfig(path)
	require.NoError(t, err)
	require.Equal(t, 100, cfg.PlanningHorizon)
	require.InDelta(t, 0.3, cfg.ArrivalLambda, 1e-9)
	require.Equal(t, 10, cfg.InitialActiveCars)
	require.NoError(t, config.Validate(cfg))
}

func TestLoadSimulationConfig_MissingFieldFailsValidation(t *testing.T) {
	path := writeTemp(t, "sim.yaml", `
goal_reserve_horizon: 50
arrival_lambda: 0.3
max_arriving_cars: 55
`)
	cfg, err := config.LoadSimulationConfig(path)
	require.NoError(t, err)
	require.Error(t, config.Validate(cfg), "planning_horizon defaults to 0 and must fail validation")
}
