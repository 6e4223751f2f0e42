package config

import (
	"errors"

	"github.com/katalvlaran/parkinglot/grid"
)

// ErrInvalidCellCode indicates a grid YAML document used a cell-kind
// letter other than R, P, W, N, or X.
var ErrInvalidCellCode = errors.New("config: invalid cell kind code")

// cellCodeToKind maps the single-letter codes spec.md SPEC_FULL's §6
// expansion defines onto grid.CellKind values.
var cellCodeToKind = map[string]grid.CellKind{
	"R": grid.Road,
	"P": grid.Parking,
	"W": grid.Wall,
	"N": grid.Entry,
	"X": grid.Exit,
}

// rawGrid is the YAML shape LoadGrid deserializes: a width/height pair
// plus a row-major array of single-letter cell codes.
type rawGrid struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Kinds  [][]string `yaml:"kinds"`
}
