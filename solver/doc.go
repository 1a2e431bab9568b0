// Package solver implements an A* search over normalized box-pushing
// puzzle states, producing provably optimal solutions under a selectable
// cost criterion.
//
// Overview:
//
//   - Solve explores the state space of a validated board.Board with A*,
//     ordered by f = g + h, where h is the admissible push-distance
//     heuristic precomputed by distmap.
//   - Push-primary methods normalize states at the push level: every
//     player position within one free-cell region maps to a single
//     canonical state (the region's smallest cell id), shrinking the
//     space dramatically.
//   - Move-primary methods keep the exact player cell and expand one
//     player step at a time, so the move count is exact.
//   - Successors that would park a box on a dead cell (one from which no
//     target is reachable) are pruned at generation and never enqueued.
//
// When to use:
//
//   - To solve a level optimally under pushes, moves, or a combined
//     lexicographic criterion.
//   - To prove a level unsolvable: an exhausted open set is a proof, and
//     is reported as a Result, never as an error.
//   - With WithKeepGraph, to retain the explored graph for stategraph
//     export and offline inspection.
//
// Key features:
//
//   - Functional options select the method, node cap, move expansion,
//     graph retention, and a progress callback.
//   - Remover levels are supported: a box pushed onto the remover cell is
//     absorbed, and the goal is an empty board.
//   - Nodes live in a bump-allocated arena with int32 parent links, so a
//     node costs a fixed handful of bytes and path reconstruction works
//     long after the producing iteration.
//   - Stats buckets created/duplicate/visited counts by depth.
//
// Performance and complexity:
//
//   - Time: O(N log N) heap operations over N explored states; each
//     push-level expansion adds one O(cells) flood fill.
//   - Space: O(N) nodes in the arena plus the visited table. Memory, not
//     time, is the practical limit; Options.MaxNodes caps it.
//   - The visited table uses a lazy decrease-key strategy: stale heap
//     entries are skipped on pop instead of being removed in place.
//
// Error handling (sentinel errors):
//
//   - ErrNilBoard:
//     Returned if a nil *board.Board is passed to Solve.
//   - ErrNodeLimit:
//     Returned when the arena reaches Options.MaxNodes. Solvability is
//     unknown at that point; this is resource exhaustion, not a proof.
//   - ErrInternal:
//     Returned when an engine invariant breaks, e.g. a dequeued state
//     holding a box on a dead cell. The run aborts; later runs are
//     unaffected since all state is per-run.
//
// API reference:
//
//	func Solve(b *board.Board, opts ...Option) (*Result, error)
//
// See solver_test.go and example_test.go for worked examples.
package solver
