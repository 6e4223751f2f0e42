// Package parking implements the parking-lot domain policy: slot
// allocation/release and exit-cell selection. It owns the free/assigned/
// occupied slot partition and the monotonic car-id counter.
//
// What:
//
//   - Manager.CreateActiveCar / CreateParkedCar mint new car.Car values.
//   - Manager.AssignGoal picks a PARK or EXIT goal per car.Intent.
//   - Manager.MarkOccupied / ReleaseAssignedSpot move slots between the
//     three partitions as cars commit to or abandon a goal.
//
// Why:
//
//   - Keeping slot bookkeeping out of the scheduler keeps the tick
//     protocol (simulation package) a pure orchestration loop over
//     domain policy calls, mirroring how the original core/parking_manager.py
//     is a standalone policy object the simulation core delegates to.
//
// Invariants (spec.md §4.4, checked by tests):
//
//   - FreeSpots, the value set of AssignedSpots, and OccupiedSpots are
//     pairwise disjoint, and their union always equals grid.ParkingCells().
//   - nextCarID is strictly monotonically increasing.
//
// Complexity: AssignGoal for PARK is O(|FreeSpots|) (linear scan for the
// Manhattan-nearest free slot, matching the original's min() over a
// Python set); all other operations are O(1) amortized.
package parking
