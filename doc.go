// Package sokosolve solves Sokoban-family puzzles: classic goal levels and
// the remover variant, where a single special cell consumes every box pushed
// onto it.
//
// 🚀 What is sokosolve?
//
//	A library plus a small CLI that together cover the whole pipeline:
//		• Level model: parse, validate and render levels (XSB + a custom format)
//		• Static analysis: per-cell push distances to the nearest goal, dead cells
//		• Search: A* over normalized states, push- or move-optimal (or combined)
//		• Reconstruction: push sequences, optionally expanded to full move paths
//		• Export: the explored state graph as DOT for external rendering
//
// ✨ Why choose sokosolve?
//
//   - Predictable results – admissible heuristic, standard A* optimality
//   - Honest failure modes – "unsolvable" is a result, not an error
//   - Pure Go core – the engine itself has no dependencies beyond the stdlib
//
// Everything is organized under flat subpackages:
//
//	board/      - grid, cells, parsing, validation, rendering
//	distmap/    - push-distance tables and dead-cell detection
//	solver/     - the A* search engine and solution paths
//	stategraph/ - DOT export of the explored node graph
//	runstore/   - SQLite-backed history of solver runs (used by the CLI)
//
// Quick ASCII example (XSB format):
//
//	#####
//	#@$.#
//	#####
//
//	one push to the right solves it.
//
// Dive into each package's doc.go for semantics, complexity and errors.
package sokosolve
