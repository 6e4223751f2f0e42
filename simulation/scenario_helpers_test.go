package simulation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parkinglot/grid"
)

// buildScenarioGrid constructs a width x height grid with exactly
// entries Entry cells and exits Exit cells placed on the top and bottom
// boundary rows respectively, and up to parkingTarget Parking cells
// filled row-major through the interior; all remaining drivable cells
// are Road. Exact cell placement is not specified by spec.md's
// scenarios (only dimensions and aggregate counts are), so this layout
// is a documented test-construction choice — see DESIGN.md.
func buildScenarioGrid(t *testing.T, width, height, entries, exits, parkingTarget int) *grid.Grid {
	t.Helper()
	kinds := make([][]grid.CellKind, height)
	for y := range kinds {
		kinds[y] = make([]grid.CellKind, width)
		for x := range kinds[y] {
			kinds[y][x] = grid.Road
		}
	}

	placeOnRow := func(row, count int, kind grid.CellKind) {
		placed := 0
		for x := 1; x < width-1 && placed < count; x++ {
			kinds[row][x] = kind
			placed++
		}
	}
	placeOnRow(0, entries, grid.Entry)
	placeOnRow(height-1, exits, grid.Exit)

	placed := 0
	for y := 1; y < height-1 && placed < parkingTarget; y++ {
		for x := 0; x < width && placed < parkingTarget; x++ {
			kinds[y][x] = grid.Parking
			placed++
		}
	}
	require.Equal(t, parkingTarget, placed, "grid too small to fit requested parking cell count")

	g, err := grid.New(kinds)
	require.NoError(t, err)
	require.Len(t, g.EntryCells(), entries)
	require.Len(t, g.ExitCells(), exits)
	require.Len(t, g.ParkingCells(), parkingTarget)
	return g
}
