package config

import "errors"

// ErrConfigurationError is config's own sentinel for malformed input
// documents (wrong row/column counts in a grid document) that are
// detected before a simulation.SimulationConfig or grid.Grid value can
// even be built. Validate additionally surfaces
// simulation.ErrConfigurationError for semantically invalid but
// structurally well-formed config values (spec.md §7).
var ErrConfigurationError = errors.New("config: configuration error")
