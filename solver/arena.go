package solver

import (
	"fmt"

	"github.com/sokotools/sokosolve/board"
)

// node is one explored search state. Nodes are never freed individually:
// parent links are indices into the arena, and path reconstruction walks
// them long after the producing iteration finished. The whole arena is
// dropped in bulk when the run ends.
type node struct {
	player board.ID // player cell after the producing step
	parent int32    // arena index of the parent, -1 for the root
	gPush  int32    // pushes from the root
	gMove  int32    // moves from the root (best-found under push normalization)
	hPush  int32    // precomputed push-distance heuristic
	hMove  int32    // move heuristic; 0 unless moves participate in ordering
	dir    board.Dir
	push   bool
}

// arena is the bump allocator owning every node of one run. Box
// configurations live in one backing slice with a fixed stride, so a node
// allocation is two appends and no per-node bookkeeping exists.
type arena struct {
	nodes  []node
	boxes  []board.ID // len(nodes)*stride, sorted per node
	stride int
	limit  int
}

func newArena(stride, limit int) *arena {
	return &arena{stride: stride, limit: limit}
}

func (a *arena) len() int { return len(a.nodes) }

// alloc appends a node and its box configuration, returning the new index.
// boxes must already be sorted and of length stride.
func (a *arena) alloc(n node, boxes []board.ID) (int32, error) {
	if len(a.nodes) >= a.limit {
		return -1, fmt.Errorf("%w: %d nodes", ErrNodeLimit, len(a.nodes))
	}
	a.nodes = append(a.nodes, n)
	a.boxes = append(a.boxes, boxes...)
	return int32(len(a.nodes) - 1), nil
}

func (a *arena) at(i int32) *node { return &a.nodes[i] }

// boxesOf returns the box configuration of node i, backed by the arena.
// Callers must not mutate it.
func (a *arena) boxesOf(i int32) []board.ID {
	off := int(i) * a.stride
	return a.boxes[off : off+a.stride]
}
