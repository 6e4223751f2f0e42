// Package planner implements time-expanded A* for a single agent moving
// on a grid.Grid against a reservation.Table, with short-lived ephemeral
// obstacles layered on top.
//
// What:
//
//   - Nodes are (x, y, t) triples. Successors at t+1 are the four
//     cardinal neighbors plus "wait" (stay in place).
//   - A successor is admissible only if it passes all seven rules in
//     Plan's doc comment (bounds, wall, exit/entry asymmetry, ephemeral
//     obstacle persistence, reservation-table vertex/edge freedom).
//   - Cost is unit per step (including wait); the heuristic is Manhattan
//     distance to the goal, which is admissible because waiting adds cost
//     without reducing distance.
//   - Search terminates on the first pop of a node at the goal position,
//     at any tick; it fails if the open set empties or every expansion
//     exceeds the horizon tick t0+planning_horizon.
//
// Why:
//
//   - The ENTRY/EXIT asymmetry (rule 3/4) stops through-traffic from
//     parasitically routing across cells reserved for arrivals/departures.
//   - Ephemeral-obstacle persistence lets an unplanned neighbor be
//     avoided for a short window without permanently walling off a long
//     path: after the persistence window, the obstacle is assumed to
//     have moved (see simulation package, which randomizes this window
//     per plan call to break deadlock symmetries).
//
// Complexity:
//
//   - Time: O(b^d) worst case where b<=5 and d is the horizon in ticks,
//     bounded in practice by the reservation table's occupancy; each
//     node is represented by a single packed int key (t*area + x*height + y,
//     per spec.md Design Notes), keeping the closed/g-score maps compact.
//   - Space: O(nodes expanded).
//
// Tie-break policy (spec.md Open Question, resolved here):
//
//   - Among nodes with equal f = g+h, lower g wins (prefer progress over
//     waiting), then lower t, then lexicographic (x, y). This is realized
//     by nodeHeap's Less function ordering on (f, g, t, x, y).
package planner
