package solver

import (
	"fmt"
	"strings"

	"github.com/sokotools/sokosolve/board"
)

// Step is one element of a solution: a direction plus whether a box was
// pushed. A push always moves the player as well.
type Step struct {
	Dir  board.Dir
	Push bool
}

// Path is the immutable, fully materialized solution sequence. It is
// produced once per successful search; there is no incremental iteration.
type Path struct {
	steps  []Step
	pushes int
	moves  int
}

// Steps returns a copy of the step sequence in execution order.
func (p *Path) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Len returns the number of steps in the sequence.
func (p *Path) Len() int { return len(p.steps) }

// Pushes returns the push count of the solution.
func (p *Path) Pushes() int { return p.pushes }

// Moves returns the move count: exact when the path is a full move
// sequence, best-found under push-level normalization otherwise.
func (p *Path) Moves() int { return p.moves }

// String renders the LURD notation: lowercase letters are plain moves,
// uppercase letters pushes.
func (p *Path) String() string {
	var sb strings.Builder
	for _, s := range p.steps {
		sb.WriteRune(s.Dir.Rune(s.Push))
	}
	return sb.String()
}

// buildPath walks the terminal node's parent chain back to the root,
// reverses it, and renders the step sequence. For push-level runs with
// Options.Moves set, the player's walk between consecutive pushes is
// reconstructed by a BFS inside the pre-push free region.
func (r *runner) buildPath(terminal int32) (*Path, error) {
	var chain []int32
	for i := terminal; i >= 0; i = r.arena.at(i).parent {
		chain = append(chain, i)
	}
	for l, h := 0, len(chain)-1; l < h; l, h = l+1, h-1 {
		chain[l], chain[h] = chain[h], chain[l]
	}

	term := r.arena.at(terminal)
	p := &Path{pushes: int(term.gPush), moves: int(term.gMove)}

	for ci := 1; ci < len(chain); ci++ {
		child := r.arena.at(chain[ci])
		if r.cfg.Method.movePrimary() {
			// every edge is already a single move
			p.steps = append(p.steps, Step{Dir: child.dir, Push: child.push})
			continue
		}
		if r.cfg.Moves {
			parent := r.arena.at(chain[ci-1])
			// the player pushed from the cell one step behind the box
			from, ok := r.b.Step(child.player, child.dir.Opposite())
			if !ok {
				return nil, fmt.Errorf("%w: push origin out of bounds", ErrInternal)
			}
			walk, found := walkDirs(r.b, r.arena.boxesOf(chain[ci-1]), parent.player, from)
			if !found {
				return nil, fmt.Errorf("%w: push origin unreachable during reconstruction", ErrInternal)
			}
			for _, d := range walk {
				p.steps = append(p.steps, Step{Dir: d})
			}
		}
		p.steps = append(p.steps, Step{Dir: child.dir, Push: true})
	}

	if r.cfg.Method.movePrimary() || r.cfg.Moves {
		p.moves = len(p.steps)
	}
	return p, nil
}

// walkDirs finds a shortest player walk from one cell to another inside the
// free region bounded by walls and the given boxes. Returns found=false
// when no walk exists.
func walkDirs(b *board.Board, boxes []board.ID, from, to board.ID) ([]board.Dir, bool) {
	if from == to {
		return nil, true
	}
	blocked := make(map[board.ID]bool, len(boxes))
	for _, id := range boxes {
		if id != board.None {
			blocked[id] = true
		}
	}

	// BFS with per-cell arrival direction for path recovery.
	prev := make(map[board.ID]board.Dir, 64)
	queue := []board.ID{from}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, d := range board.Directions {
			n, ok := b.Step(cur, d)
			if !ok || b.At(n) == board.Wall || blocked[n] {
				continue
			}
			if _, seen := prev[n]; seen || n == from {
				continue
			}
			prev[n] = d
			if n == to {
				// unwind to recover the direction sequence
				var dirs []board.Dir
				for at := to; at != from; {
					d := prev[at]
					dirs = append(dirs, d)
					back, _ := b.Step(at, d.Opposite())
					at = back
				}
				for l, h := 0, len(dirs)-1; l < h; l, h = l+1, h-1 {
					dirs[l], dirs[h] = dirs[h], dirs[l]
				}
				return dirs, true
			}
			queue = append(queue, n)
		}
	}
	return nil, false
}
