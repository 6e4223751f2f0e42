// Package simulation implements the scheduler: the five-step tick
// protocol that drives cars through plan/advance/replan cycles against a
// shared grid, reservation table, and parking manager.
//
// What:
//
//   - Scheduler.Step runs one tick: cleanup, wake-ups, advance (plan the
//     unplanned, resolve vertex/edge conflicts, commit), arrivals, and
//     the tick increment.
//   - Scheduler.Run drives Step until the active set is empty and no
//     further arrivals can occur (spec.md §4.5.4).
//   - Snapshot/Stats/RunResult are the plain-data outputs consumers read
//     (spec.md §6).
//
// Why:
//
//   - Keeping domain policy (parking.Manager) and pathfinding
//     (planner.Plan) as separate collaborators lets the scheduler stay a
//     pure orchestration loop, mirroring how core/simulation_core.py
//     delegates to parking_manager.py and planner.py rather than
//     inlining their logic.
//   - All randomness flows through a single *rand.Rand held by the
//     Scheduler (rng.go, grounded on tsp/rng.go's single-stream
//     discipline) so that RNG consumption order — wake-ups, then
//     obstacle_persistence draws, then arrival Bernoulli, then entry
//     shuffle, then PARK tie-break, then initial-parked-car spot choice
//     — is reproducible across runs with the same seed (spec.md §5).
//
// Errors: PlanFailure and BlockedMove are expected, non-fatal conditions
// tracked only via counters (Stats.TotalFailedPlans) — the scheduler
// never returns an error for them. ErrInvariantViolation is returned
// only by Step when constructed WithInvariantChecks and one of the
// seven invariants (spec.md §8) fails; this is a bug signal, reserved
// for tests and debug builds.
//
// Complexity: Step is O(A * plan) where A is the active-car count and
// plan is planner.Plan's cost per call (see planner/doc.go); conflict
// resolution iterates to a fixpoint bounded by A passes in the worst
// case.
package simulation
