// Package car defines the agent state the scheduler drives: identity,
// intent, current plan, and the lifecycle predicates derived from them.
//
// What:
//
//   - Car carries an immutable id/spawn_time/is_initial trio and mutable
//     position/intent/goal/path/cursor/failure-counter state.
//   - The Unplanned, Planned and Arrived lifecycle states are not stored;
//     they are derived on demand from the mutable fields (IsUnplanned,
//     IsPlanned, IsArrived), exactly as the original agents/car.py
//     computes has_path/is_finished rather than keeping a state field.
//     Waiting is the one stored flag, set and cleared by the scheduler.
//     Parked and Exited have no predicate here; the scheduler tracks
//     them by removing the car from its active set.
//
// Why:
//
//   - Keeping lifecycle derived instead of an explicit state machine
//     avoids a second source of truth that could drift from path/cursor.
//
// Complexity: every method here is O(1) except PeekNext, Advance and
// ConsumeWaitStep, which are O(k) where k is the number of
// already-elapsed path entries they must fast-forward past (amortized
// O(1) across a whole run, since the cursor only ever advances).
package car
