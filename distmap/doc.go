// Package distmap precomputes, once per level, the minimum number of pushes
// needed to bring a box from any cell to the nearest goal (or to the single
// remover cell).
//
// What:
//
//   - Table maps every cell id to its minimum push distance over all targets,
//     or marks it as a dead cell when no finite distance exists.
//   - Built by a reverse breadth-first search that pulls a box outward from
//     the targets: a pull from cell c to neighbor n is legal exactly when n
//     and the cell beyond n (where the player would stand to push the box
//     back) are both non-wall. Running the pull from all targets at once
//     yields the per-cell minimum directly.
//
// Why:
//
//   - Summing the per-box distances gives the solver an admissible A*
//     heuristic: box-box blocking and goal assignment are ignored, so the
//     estimate never exceeds the true remaining push count.
//   - A box parked on a dead cell can never reach any target, so such
//     successors are pruned the moment they are generated. This is the
//     system's entire deadlock detection; box clusters and other frozen
//     patterns are intentionally not analyzed.
//
// Complexity:
//
//   - New:  O(W×H) time and memory (each cell enters the BFS queue once).
//   - Dist/Dead: O(1). Sum: O(len(boxes)).
//
// Errors:
//
//   - ErrNilBoard: New was given a nil board.
package distmap
