package grid

// Grid is an immutable rectangular map of typed cells. It is built once
// by an external producer (procedural generator, editor, or config
// loader — see the config package) and never mutated by the simulation
// core; the core only reads drivability and kind.
type Grid struct {
	width, height int
	kinds         [][]CellKind // kinds[y][x]

	parkingCells []Position
	entryCells   []Position
	exitCells    []Position
}

// New constructs a Grid from a row-major (kinds[y][x]) slice of cell
// kinds. It deep-copies the input so later caller mutation cannot affect
// the Grid.
//
// Returns ErrEmptyGrid if width or height is zero, ErrNonRectangular if
// any row has the wrong length, ErrNoDrivableCells if no drivable cell
// exists, and ErrBoundaryCell if an Entry or Exit cell sits off a
// non-corner boundary position.
//
// Complexity: O(W*H) time and memory.
func New(kinds [][]CellKind) (*Grid, error) {
	height := len(kinds)
	if height == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(kinds[0])
	for _, row := range kinds {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]CellKind, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]CellKind, width)
		copy(cells[y], kinds[y])
	}

	g := &Grid{
		width:  width,
		height: height,
		kinds:  cells,
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := Position{X: x, Y: y}
			switch cells[y][x] {
			case Parking:
				g.parkingCells = append(g.parkingCells, pos)
			case Entry:
				if !g.isBoundaryNonCorner(x, y) {
					return nil, ErrBoundaryCell
				}
				g.entryCells = append(g.entryCells, pos)
			case Exit:
				if !g.isBoundaryNonCorner(x, y) {
					return nil, ErrBoundaryCell
				}
				g.exitCells = append(g.exitCells, pos)
			}
		}
	}

	if len(g.parkingCells) == 0 && len(g.entryCells) == 0 && len(g.exitCells) == 0 && !g.hasAnyRoad() {
		return nil, ErrNoDrivableCells
	}

	return g, nil
}

func (g *Grid) hasAnyRoad() bool {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.kinds[y][x] == Road {
				return true
			}
		}
	}
	return false
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies within [0, Width) x [0, Height).
//
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Kind returns the CellKind at (x, y). Callers must check InBounds first;
// Kind panics on out-of-range coordinates like a slice index would.
//
// Complexity: O(1).
func (g *Grid) Kind(x, y int) CellKind {
	return g.kinds[y][x]
}

// Drivable reports whether (x, y) is in bounds and not a Wall.
//
// Complexity: O(1).
func (g *Grid) Drivable(x, y int) bool {
	return g.InBounds(x, y) && g.kinds[y][x].Drivable()
}

// ParkingCells returns the precomputed set of Parking cell positions.
// The returned slice must not be mutated by callers.
func (g *Grid) ParkingCells() []Position { return g.parkingCells }

// EntryCells returns the precomputed set of Entry cell positions.
// The returned slice must not be mutated by callers.
func (g *Grid) EntryCells() []Position { return g.entryCells }

// ExitCells returns the precomputed set of Exit cell positions.
// The returned slice must not be mutated by callers.
func (g *Grid) ExitCells() []Position { return g.exitCells }

// isBoundaryNonCorner reports whether (x, y) sits on the grid's outer
// boundary but not on one of its four corners.
func (g *Grid) isBoundaryNonCorner(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	onBoundary := x == 0 || x == g.width-1 || y == 0 || y == g.height-1
	if !onBoundary {
		return false
	}
	isCorner := (x == 0 && y == 0) ||
		(x == 0 && y == g.height-1) ||
		(x == g.width-1 && y == 0) ||
		(x == g.width-1 && y == g.height-1)
	return !isCorner
}
