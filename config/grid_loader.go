package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/parkinglot/grid"
)

// LoadGrid reads a YAML document of width, height, and a row-major kinds
// array of single-letter cell codes (R, P, W, N, X) and builds a
// *grid.Grid. grid.New performs the cheap structural checks spec.md §6
// assigns to construction (non-corner boundary placement, at least one
// drivable cell); full external reachability validation remains a
// producer responsibility per the Non-goals.
//
// Complexity: O(W*H).
func LoadGrid(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading grid file: %w", err)
	}

	var raw rawGrid
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parsing grid YAML: %w", err)
	}

	if len(raw.Kinds) != raw.Height {
		return nil, fmt.Errorf("%w: declared height %d but %d rows of kinds", ErrConfigurationError, raw.Height, len(raw.Kinds))
	}

	kinds := make([][]grid.CellKind, len(raw.Kinds))
	for y, row := range raw.Kinds {
		if len(row) != raw.Width {
			return nil, fmt.Errorf("%w: declared width %d but row %d has %d cells", ErrConfigurationError, raw.Width, y, len(row))
		}
		kinds[y] = make([]grid.CellKind, len(row))
		for x, code := range row {
			kind, ok := cellCodeToKind[code]
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidCellCode, code, y, x)
			}
			kinds[y][x] = kind
		}
	}

	return grid.New(kinds)
}
