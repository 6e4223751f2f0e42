// Package grid defines the static, read-only 2D cell map a simulation
// run takes place on.
//
// What:
//
//   - Grid wraps a rectangular array of CellKind values.
//   - CellKind is a closed enum: Road, Parking, Wall, Entry, Exit.
//   - Derived cell sets (parking/entry/exit) are extracted once at
//     construction so callers never re-scan the grid.
//
// Why:
//
//   - The planner and parking manager both need fast, read-only lookups
//     (InBounds, Kind, Drivable) without owning or mutating grid state.
//   - Precomputing the derived sets keeps per-tick scheduler work free of
//     any O(W*H) grid scans (see simulation package).
//
// Complexity:
//
//   - New:        O(W*H).
//   - InBounds/Kind/Drivable: O(1).
//   - ParkingCells/EntryCells/ExitCells: O(1) (precomputed slices).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is zero.
//   - ErrNonRectangular: a row has a different length than Width.
//   - ErrNoDrivableCells: grid has no Road/Parking/Entry/Exit cell.
//   - ErrBoundaryCell: an Entry or Exit cell is not on a non-corner
//     boundary position.
package grid
