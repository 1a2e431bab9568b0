package solver

import (
	"github.com/sokotools/sokosolve/board"
)

// Graph is the explored-node graph of one finished run, retained with
// WithKeepGraph. Nodes are exposed in creation order; index 0 is the root.
// The graph borrows the run's arena, so it stays valid as long as the
// Result is referenced.
type Graph struct {
	b *board.Board
	a *arena
}

// GraphNode is one explored state as seen from outside the engine.
type GraphNode struct {
	Parent int       // index of the parent node, -1 for the root
	Dir    board.Dir // producing step; undefined for the root
	Push   bool      // whether the producing step pushed a box
	Player board.ID
	Boxes  []board.ID // sorted; board.None marks absorbed boxes
	Pushes int        // pushes from the root
	Moves  int        // moves from the root (best-found under push normalization)
}

// Board returns the level the graph was explored on.
func (g *Graph) Board() *board.Board { return g.b }

// Len returns the number of explored nodes.
func (g *Graph) Len() int { return g.a.len() }

// Node returns the i-th node. The Boxes slice is a fresh copy.
func (g *Graph) Node(i int) GraphNode {
	nd := g.a.at(int32(i))
	return GraphNode{
		Parent: int(nd.parent),
		Dir:    nd.dir,
		Push:   nd.push,
		Player: nd.player,
		Boxes:  append([]board.ID(nil), g.a.boxesOf(int32(i))...),
		Pushes: int(nd.gPush),
		Moves:  int(nd.gMove),
	}
}
