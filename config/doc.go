// Package config loads the two external inputs spec.md §6 describes: a
// grid definition and a SimulationConfig, both as YAML documents.
//
// What:
//
//   - LoadGrid deserializes a width/height/kinds YAML document into a
//     *grid.Grid.
//   - LoadSimulationConfig deserializes the seven-field run config
//     table (spec.md §6) into a simulation.SimulationConfig, tolerantly
//     coercing loosely-typed YAML scalars (e.g. "0.3" or 3 where a float
//     is expected) via github.com/spf13/cast before validating.
//   - Validate wraps simulation.ValidateConfig so config-layer errors
//     share the same ErrConfigurationError sentinel family used at
//     construction time.
//
// Why: grounded on viamrobotics-rdk's config package, which likewise
// loads a raw YAML/JSON document into an intermediate map and coerces
// fields via cast rather than trusting the document's exact Go types —
// operators hand-editing YAML routinely write "0.3" or "30" without
// being careful about quoting.
package config
