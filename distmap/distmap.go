package distmap

import (
	"errors"

	"github.com/sokotools/sokosolve/board"
)

// ErrNilBoard indicates a nil *board.Board was passed to New.
var ErrNilBoard = errors.New("distmap: board is nil")

// unreachable marks cells with no finite push distance to any target.
const unreachable = int32(-1)

// Table holds the per-cell minimum push distance to the nearest goal or
// remover. Immutable after New.
type Table struct {
	b    *board.Board
	dist []int32 // row-major, unreachable (-1) for dead cells and walls
}

// New builds the distance table for a validated board.
//
// The table is filled by one multi-source BFS over the pull relation,
// seeded with every target at distance zero:
//  1. pop cell c with known distance k;
//  2. for each direction d, let n = c+d (candidate box cell) and
//     p = n+d (player cell for the corresponding push toward c);
//  3. if both n and p are non-wall and n has no distance yet, n gets k+1.
//
// The minimum over all targets falls out of the shared BFS frontier, so no
// per-target pass is needed.
func New(b *board.Board) (*Table, error) {
	if b == nil {
		return nil, ErrNilBoard
	}

	t := &Table{b: b, dist: make([]int32, b.Size())}
	for i := range t.dist {
		t.dist[i] = unreachable
	}

	queue := make([]board.ID, 0, b.Size())
	for _, g := range b.Targets() {
		t.dist[g] = 0
		queue = append(queue, g)
	}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		k := t.dist[cur]
		for _, d := range board.Directions {
			n, ok := b.Step(cur, d)
			if !ok || b.At(n) == board.Wall || t.dist[n] >= 0 {
				continue
			}
			p, ok := b.Step(n, d)
			if !ok || b.At(p) == board.Wall {
				continue
			}
			t.dist[n] = k + 1
			queue = append(queue, n)
		}
	}

	return t, nil
}

// Dist returns the minimum push distance from id to the nearest target.
// ok is false for dead cells (and walls).
func (t *Table) Dist(id board.ID) (int, bool) {
	d := t.dist[id]
	return int(d), d >= 0
}

// Dead reports whether a box on id can never reach any target.
func (t *Table) Dead(id board.ID) bool { return t.dist[id] < 0 }

// Sum adds up the distances of every active box in the configuration;
// the admissible heuristic used by the search. Absorbed boxes (board.None)
// contribute nothing. ok is false if any active box sits on a dead cell,
// which a correctly pruning search never produces.
func (t *Table) Sum(boxes []board.ID) (int, bool) {
	total := 0
	for _, id := range boxes {
		if id == board.None {
			continue
		}
		d := t.dist[id]
		if d < 0 {
			return 0, false
		}
		total += int(d)
	}
	return total, true
}

// Board returns the board the table was built for.
func (t *Table) Board() *board.Board { return t.b }
