// Package reservation implements the space-time occupancy index the
// planner and scheduler coordinate through.
//
// What:
//
//   - Three independent hashed sets: vertex (x,y,t), edge (x1,y1,x2,y2,t),
//     and static (x,y).
//   - IsCellFree / IsEdgeFree answer point-in-time occupancy queries.
//   - ReservePath / UnreservePath install/remove a whole timed path at
//     once; the inverse is exact (idempotent) set removal.
//   - ReserveGoal / UnreserveGoal manage permanent (static) holds, used
//     for parked cars and for cars pinned in the waiting state.
//
// Why:
//
//   - The planner only ever reads this table; it never mutates it. The
//     scheduler is the sole writer, which keeps the coordination surface
//     single-threaded and lock-free (see simulation package).
//   - An edge reservation also blocks the reverse direction at the same
//     tick, which is what forbids a head-on vertex swap between two cars.
//
// Complexity:
//
//   - All operations are O(1) amortized (Go map operations) per element,
//     O(len(path)) for whole-path reserve/unreserve.
//
// Design note (goal-reserve horizon):
//
//   - ReserveGoal installs a permanent static hold regardless of any
//     configured horizon; the horizon is advisory only, and the table
//     never auto-expires a static reservation on its own timer. Callers
//     that want an expiring hold must call UnreserveGoal explicitly, or
//     opt into WithExpiringGoals (see types.go), which is unused by the
//     default simulation wiring. See spec Design Notes / DESIGN.md.
package reservation
