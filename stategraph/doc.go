// Package stategraph exports a retained solver graph as Graphviz DOT.
//
// Overview:
//
//   - Every explored node becomes a DOT node labeled with the level
//     rendered in XSB notation for that state, so the picture reads as a
//     gallery of board positions.
//   - Every parent→child edge is labeled with the producing step in LURD
//     notation (uppercase for pushes).
//   - WriteFile transparently zstd-compresses the output when the target
//     path ends in ".zst"; exploration graphs of nontrivial levels are
//     large and extremely repetitive, which zstd handles well.
//
// When to use:
//
//   - Offline inspection of what the search actually explored, typically
//     with "dot -Tsvg".
//   - Debugging pruning and normalization: a state you expected to see is
//     either in the picture or it is not.
//
// The input is a *solver.Graph obtained by running Solve with
// solver.WithKeepGraph. Rendering is the caller's business; this package
// never shells out to Graphviz.
//
// API reference:
//
//	func Write(w io.Writer, g *solver.Graph) error
//	func WriteFile(path string, g *solver.Graph) error
package stategraph
