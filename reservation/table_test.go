package reservation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parkinglot/grid"
	"github.com/katalvlaran/parkinglot/reservation"
)

func samplePath() []grid.TimedPosition {
	return []grid.TimedPosition{
		{X: 0, Y: 0, T: 0},
		{X: 1, Y: 0, T: 1},
		{X: 2, Y: 0, T: 2},
	}
}

func TestTable_ReservePath_BlocksCellsAndEdges(t *testing.T) {
	tbl := reservation.New()
	path := samplePath()
	tbl.ReservePath(path)

	require.False(t, tbl.IsCellFree(1, 0, 1))
	require.True(t, tbl.IsCellFree(1, 0, 0))
	require.False(t, tbl.IsEdgeFree(0, 0, 1, 0, 0))
	// reverse direction at the same tick must also be blocked (head-on swap guard)
	require.False(t, tbl.IsEdgeFree(1, 0, 0, 0, 0))
}

func TestTable_ReserveUnreservePath_RoundTrips(t *testing.T) {
	tbl := reservation.New()
	path := samplePath()

	tbl.ReservePath(path)
	tbl.UnreservePath(path)

	for _, tp := range path {
		require.True(t, tbl.IsCellFree(tp.X, tp.Y, tp.T))
	}
	require.True(t, tbl.IsEdgeFree(0, 0, 1, 0, 0))
}

func TestTable_UnreservePath_Idempotent(t *testing.T) {
	tbl := reservation.New()
	path := samplePath()
	// unreserving a path that was never reserved must be a no-op, not a panic
	require.NotPanics(t, func() { tbl.UnreservePath(path) })
	for _, tp := range path {
		require.True(t, tbl.IsCellFree(tp.X, tp.Y, tp.T))
	}
}

func TestTable_ReserveGoal_IsPermanentByDefault(t *testing.T) {
	tbl := reservation.New()
	tbl.ReserveGoal(5, 5, 0, 1)

	require.False(t, tbl.IsCellFree(5, 5, 0))
	require.False(t, tbl.IsCellFree(5, 5, 10_000), "default goal reservation must not expire")
}

func TestTable_UnreserveGoal_NoopWhenNotReserved(t *testing.T) {
	tbl := reservation.New()
	require.NotPanics(t, func() { tbl.UnreserveGoal(1, 1) })
	require.True(t, tbl.IsCellFree(1, 1, 0))
}

func TestTable_UnreserveGoal_ReleasesHold(t *testing.T) {
	tbl := reservation.New()
	tbl.ReserveGoal(2, 2, 0, 1)
	tbl.UnreserveGoal(2, 2)
	require.True(t, tbl.IsCellFree(2, 2, 0))
}

func TestTable_WithExpiringGoals_ExpiresPastHorizon(t *testing.T) {
	tbl := reservation.New(reservation.WithExpiringGoals())
	tbl.ReserveGoal(3, 3, 0, 5)

	require.False(t, tbl.IsCellFree(3, 3, 5))
	require.True(t, tbl.IsCellFree(3, 3, 6))
	require.True(t, tbl.IsStatic(3, 3), "IsStatic ignores expiry")
}
