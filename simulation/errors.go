package simulation

import "errors"

// ErrInvariantViolation wraps a description of which of the seven
// per-tick invariants (spec.md §8) failed. Only ever returned when the
// Scheduler was built WithInvariantChecks.
var ErrInvariantViolation = errors.New("simulation: invariant violation")

// ErrConfigurationError is returned by NewScheduler when its
// SimulationConfig or grid is structurally invalid (spec.md §7,
// ConfigurationError — caller fault, checked once at construction).
var ErrConfigurationError = errors.New("simulation: configuration error")
