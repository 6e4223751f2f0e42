package reservation_test

import (
	"fmt"

	"github.com/katalvlaran/parkinglot/grid"
	"github.com/katalvlaran/parkinglot/reservation"
)

// ExampleTable_ReservePath reserves a three-step path and shows that the
// middle cell is occupied only at its own tick.
func ExampleTable_ReservePath() {
	tbl := reservation.New()
	tbl.ReservePath([]grid.TimedPosition{
		{X: 0, Y: 0, T: 0},
		{X: 1, Y: 0, T: 1},
		{X: 2, Y: 0, T: 2},
	})

	fmt.Println(tbl.IsCellFree(1, 0, 0), tbl.IsCellFree(1, 0, 1))
	// Output: true false
}
