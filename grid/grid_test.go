package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parkinglot/grid"
)

func smallGrid(t *testing.T) *grid.Grid {
	t.Helper()
	kinds := [][]grid.CellKind{
		{grid.Road, grid.Entry, grid.Exit, grid.Road},
		{grid.Road, grid.Parking, grid.Parking, grid.Road},
		{grid.Road, grid.Parking, grid.Parking, grid.Road},
		{grid.Road, grid.Road, grid.Road, grid.Road},
	}
	g, err := grid.New(kinds)
	require.NoError(t, err)
	return g
}

func TestNew_Dimensions(t *testing.T) {
	g := smallGrid(t)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 4, g.Height())
}

func TestNew_DerivedSets(t *testing.T) {
	g := smallGrid(t)
	require.Len(t, g.ParkingCells(), 4)
	require.Len(t, g.EntryCells(), 1)
	require.Len(t, g.ExitCells(), 1)
	require.Equal(t, grid.Position{X: 1, Y: 0}, g.EntryCells()[0])
	require.Equal(t, grid.Position{X: 2, Y: 0}, g.ExitCells()[0])
}

func TestNew_EmptyGrid(t *testing.T) {
	_, err := grid.New(nil)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.New([][]grid.CellKind{{}})
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestNew_NonRectangular(t *testing.T) {
	_, err := grid.New([][]grid.CellKind{
		{grid.Road, grid.Road},
		{grid.Road},
	})
	require.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestNew_NoDrivableCells(t *testing.T) {
	_, err := grid.New([][]grid.CellKind{
		{grid.Wall, grid.Wall},
		{grid.Wall, grid.Wall},
	})
	require.ErrorIs(t, err, grid.ErrNoDrivableCells)
}

func TestNew_EntryMustBeNonCornerBoundary(t *testing.T) {
	_, err := grid.New([][]grid.CellKind{
		{grid.Entry, grid.Road},
		{grid.Road, grid.Road},
	})
	require.ErrorIs(t, err, grid.ErrBoundaryCell)
}

func TestGrid_InBoundsAndDrivable(t *testing.T) {
	g := smallGrid(t)
	require.True(t, g.InBounds(0, 0))
	require.False(t, g.InBounds(-1, 0))
	require.False(t, g.InBounds(4, 4))

	require.True(t, g.Drivable(0, 0))
	require.Equal(t, grid.Entry, g.Kind(1, 0))
}

func TestGrid_DeepCopyImmutability(t *testing.T) {
	kinds := [][]grid.CellKind{
		{grid.Road, grid.Road},
		{grid.Road, grid.Road},
	}
	g, err := grid.New(kinds)
	require.NoError(t, err)

	kinds[0][0] = grid.Wall
	require.Equal(t, grid.Road, g.Kind(0, 0), "grid must deep-copy input, not alias it")
}

func TestManhattan(t *testing.T) {
	require.Equal(t, 7, grid.Manhattan(grid.Position{X: 0, Y: 0}, grid.Position{X: 3, Y: 4}))
	require.Equal(t, 0, grid.Manhattan(grid.Position{X: 2, Y: 2}, grid.Position{X: 2, Y: 2}))
}
