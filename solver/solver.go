package solver

import (
	"container/heap"
	"fmt"

	"github.com/sokotools/sokosolve/board"
	"github.com/sokotools/sokosolve/distmap"
)

// Result is the outcome of one completed run. Solved=false with a nil
// error means the open set was exhausted: the level is proved unsolvable.
type Result struct {
	Solved bool
	Path   *Path // nil unless Solved
	Stats  Stats
	Method Method
	Graph  *Graph // non-nil only with WithKeepGraph
}

// Solve runs one synchronous A* search over the level. It builds the
// distance table, explores normalized states until the goal test passes or
// the open set empties, and reconstructs the solution path.
//
// Everything the run allocates (node arena, visited table, scratch
// buffers) is owned by this single call and released in bulk when it
// returns; nothing is shared between runs. There is no cancellation point:
// a caller wanting a timeout must wrap the call and discard the result.
//
// Errors: ErrNilBoard, ErrNodeLimit (solvability unknown), ErrInternal
// (broken invariant), or a distmap construction error. An unsolvable level
// is a Result, not an error.
func Solve(b *board.Board, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if b == nil {
		return nil, ErrNilBoard
	}
	tbl, err := distmap.New(b)
	if err != nil {
		return nil, err
	}

	size := b.Size()
	boxes := b.Boxes()
	r := &runner{
		b:          b,
		tbl:        tbl,
		cfg:        cfg,
		arena:      newArena(len(boxes), cfg.MaxNodes),
		visited:    make(map[string]costPair, 1024),
		boxMark:    make([]uint32, size),
		regionMark: make([]uint32, size),
		moveDist:   make([]int32, size),
		succ:       make([]board.ID, 0, len(boxes)),
		keyBuf:     make([]byte, 0, 2*len(boxes)+2),
	}
	return r.run(boxes)
}

// costPair is a lexicographic (primary, secondary) cost.
type costPair struct{ prim, sec int32 }

func lessPair(a, b costPair) bool {
	return a.prim < b.prim || (a.prim == b.prim && a.sec < b.sec)
}

// runner holds the mutable state of a single Solve execution.
type runner struct {
	b   *board.Board
	tbl *distmap.Table
	cfg Options

	arena   *arena
	visited map[string]costPair // canonical key → best known g
	pq      nodePQ
	stats   Stats

	// Generation-marked scratch buffers: bumping the generation counter
	// invalidates a whole buffer in O(1), keeping the inner loop free of
	// per-expansion clearing.
	boxGen     uint32
	boxMark    []uint32 // boxMark[id] == boxGen ⇔ a box occupies id
	floodGen   uint32
	regionMark []uint32 // regionMark[id] == floodGen ⇔ id in current region
	moveDist   []int32  // player move distance within the current region
	queue      []board.ID
	pending    []pendingPush
	succ       []board.ID
	keyBuf     []byte
}

// pendingPush is a legal push discovered during the region flood, emitted
// after the flood completes so the scratch buffers can be reused for the
// successors' own normalization floods.
type pendingPush struct {
	box  board.ID
	dest board.ID
	dir  board.Dir
	walk int32 // player moves from the state's player cell to the push origin
}

func (r *runner) run(rootBoxes []board.ID) (*Result, error) {
	res := &Result{Method: r.cfg.Method}

	// A box that starts on a dead cell can never reach any target: the
	// level is unsolvable before the first node is created. Boxes already
	// resting on a goal have distance zero and are unaffected.
	hP, live := r.tbl.Sum(rootBoxes)
	if !live {
		if r.cfg.KeepGraph {
			res.Graph = &Graph{b: r.b, a: r.arena}
		}
		return res, nil
	}

	root := node{player: r.b.Player(), parent: -1, hPush: int32(hP)}
	if r.cfg.Method != MethodPushes {
		root.hMove = r.moveHeuristic(root.player, rootBoxes, root.hPush)
	}
	idx, err := r.arena.alloc(root, rootBoxes)
	if err != nil {
		return nil, err
	}
	key := r.stateKey(root.player, rootBoxes)
	g := r.gPair(&root)
	r.visited[key] = g
	r.stats.addCreated(int(g.prim))
	heap.Push(&r.pq, pqItem{idx: idx, key: key, f: r.fPair(&root), g: g})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(pqItem)
		// Lazy decrease-key: skip stale heap entries for states already
		// visited through a strictly better path.
		if best, seen := r.visited[item.key]; seen && lessPair(best, item.g) {
			r.stats.addDuplicate(int(item.g.prim))
			continue
		}
		if r.stats.addVisited(int(item.g.prim)) && r.cfg.Status != nil {
			r.cfg.Status(int(item.g.prim), r.stats.clone())
		}

		if r.isGoal(item.idx) {
			path, perr := r.buildPath(item.idx)
			if perr != nil {
				return nil, perr
			}
			res.Solved, res.Path = true, path
			break
		}

		// Dequeued states must hold live boxes only: dead successors are
		// pruned at generation, so a violation here is a broken invariant.
		if _, ok := r.tbl.Sum(r.arena.boxesOf(item.idx)); !ok {
			return nil, fmt.Errorf("%w: box on dead cell in visited state", ErrInternal)
		}

		if r.cfg.Method.movePrimary() {
			err = r.expandMoves(item.idx)
		} else {
			err = r.expandPushes(item.idx)
		}
		if err != nil {
			return nil, err
		}
	}

	res.Stats = r.stats
	if r.cfg.KeepGraph {
		res.Graph = &Graph{b: r.b, a: r.arena}
	}
	return res, nil
}

// isGoal applies the goal test to a dequeued node: zero active boxes in
// remover mode, heuristic zero (every box on a goal) otherwise.
func (r *runner) isGoal(idx int32) bool {
	if r.b.RemoverMode() {
		for _, id := range r.arena.boxesOf(idx) {
			if id != board.None {
				return false
			}
		}
		return true
	}
	return r.arena.at(idx).hPush == 0
}

// expandPushes generates successors under push-level normalization: flood
// the player's free region once, recording move distances, and emit one
// successor per (box, direction) whose push destination is not a wall,
// another box, or a dead cell.
func (r *runner) expandPushes(idx int32) error {
	nd := r.arena.at(idx)
	pboxes := r.arena.boxesOf(idx)
	r.markBoxes(pboxes)

	r.floodGen++
	r.pending = r.pending[:0]
	r.queue = r.queue[:0]
	r.queue = append(r.queue, nd.player)
	r.regionMark[nd.player] = r.floodGen
	r.moveDist[nd.player] = 0

	for qi := 0; qi < len(r.queue); qi++ {
		cur := r.queue[qi]
		for _, d := range board.Directions {
			n, ok := r.b.Step(cur, d)
			if !ok || r.b.At(n) == board.Wall {
				continue
			}
			if r.boxMark[n] == r.boxGen {
				dest, ok2 := r.b.Step(n, d)
				if !ok2 || r.b.At(dest) == board.Wall || r.boxMark[dest] == r.boxGen || r.tbl.Dead(dest) {
					continue
				}
				r.pending = append(r.pending, pendingPush{
					box: n, dest: dest, dir: d, walk: r.moveDist[cur],
				})
			} else if r.regionMark[n] != r.floodGen {
				r.regionMark[n] = r.floodGen
				r.moveDist[n] = r.moveDist[cur] + 1
				r.queue = append(r.queue, n)
			}
		}
	}

	// Emit after the flood so the successors' normalization floods can
	// reuse the scratch buffers.
	for _, pp := range r.pending {
		if err := r.emit(idx, pp.box, pp.dest, pp.dir, true, pp.walk); err != nil {
			return err
		}
	}
	return nil
}

// expandMoves generates successors one player step at a time: the four
// neighboring cells yield either a plain move or a push.
func (r *runner) expandMoves(idx int32) error {
	nd := r.arena.at(idx)
	player := nd.player
	r.markBoxes(r.arena.boxesOf(idx))

	for _, d := range board.Directions {
		n, ok := r.b.Step(player, d)
		if !ok || r.b.At(n) == board.Wall {
			continue
		}
		if r.boxMark[n] == r.boxGen {
			dest, ok2 := r.b.Step(n, d)
			if !ok2 || r.b.At(dest) == board.Wall || r.boxMark[dest] == r.boxGen || r.tbl.Dead(dest) {
				continue
			}
			if err := r.emit(idx, n, dest, d, true, 0); err != nil {
				return err
			}
		} else {
			if err := r.emit(idx, board.None, board.None, d, false, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// emit builds, deduplicates, and enqueues one successor. For a push,
// box/dest name the moved box; for a plain move they are board.None.
// walk is the player move distance to the push origin (push-level
// expansion only; single-step expansion passes 0 and counts the step in
// gMove unconditionally).
func (r *runner) emit(parent int32, box, dest board.ID, d board.Dir, push bool, walk int32) error {
	pnd := r.arena.at(parent)

	succ := append(r.succ[:0], r.arena.boxesOf(parent)...)
	nd := node{
		parent: parent,
		gPush:  pnd.gPush,
		gMove:  pnd.gMove + walk + 1,
		dir:    d,
		push:   push,
	}
	if push {
		newID := dest
		if r.b.RemoverMode() && dest == r.b.Remover() {
			newID = board.None // absorbed
		}
		replaceSorted(succ, box, newID)
		nd.gPush++
		nd.player = box // the player ends on the box's old cell
	} else {
		n, _ := r.b.Step(pnd.player, d)
		nd.player = n
	}

	hP, live := r.tbl.Sum(succ)
	if !live {
		return fmt.Errorf("%w: generated state has box on dead cell", ErrInternal)
	}
	nd.hPush = int32(hP)
	if r.cfg.Method != MethodPushes {
		nd.hMove = r.moveHeuristic(nd.player, succ, nd.hPush)
	}

	key := r.stateKey(nd.player, succ)
	g := r.gPair(&nd)
	if best, seen := r.visited[key]; seen && !lessPair(g, best) {
		return nil // equal-or-better path already known: drop, never enqueue
	}

	idx, err := r.arena.alloc(nd, succ)
	if err != nil {
		return err
	}
	r.visited[key] = g
	r.stats.addCreated(int(g.prim))
	heap.Push(&r.pq, pqItem{idx: idx, key: key, f: r.fPair(&nd), g: g})
	return nil
}

// markBoxes refreshes the box occupancy marks for a configuration.
func (r *runner) markBoxes(boxes []board.ID) {
	r.boxGen++
	for _, id := range boxes {
		if id != board.None {
			r.boxMark[id] = r.boxGen
		}
	}
}

// stateKey computes the canonical search key of a raw state: the packed
// box configuration plus either the canonical id of the player's free-cell
// region (push-level normalization) or the exact player cell. The region
// is recomputed by a flood fill every time; player locality is never
// carried over from the parent.
func (r *runner) stateKey(player board.ID, boxes []board.ID) string {
	if r.cfg.Method.movePrimary() {
		return r.buildKey(boxes, player)
	}

	r.markBoxes(boxes)
	r.floodGen++
	r.queue = r.queue[:0]
	r.queue = append(r.queue, player)
	r.regionMark[player] = r.floodGen
	canon := player
	for qi := 0; qi < len(r.queue); qi++ {
		cur := r.queue[qi]
		if cur < canon {
			canon = cur
		}
		for _, d := range board.Directions {
			n, ok := r.b.Step(cur, d)
			if !ok || r.b.At(n) == board.Wall ||
				r.boxMark[n] == r.boxGen || r.regionMark[n] == r.floodGen {
				continue
			}
			r.regionMark[n] = r.floodGen
			r.queue = append(r.queue, n)
		}
	}
	return r.buildKey(boxes, canon)
}

// buildKey packs box ids and the player locality into a short byte string.
// State keys are produced at very high rates; the Go runtime's string hash
// over this fixed-size key is the cheap non-cryptographic hash the visited
// table needs.
func (r *runner) buildKey(boxes []board.ID, locality board.ID) string {
	buf := r.keyBuf[:0]
	for _, id := range boxes {
		buf = append(buf, byte(id), byte(id>>8))
	}
	buf = append(buf, byte(locality), byte(locality>>8))
	r.keyBuf = buf
	return string(buf)
}

// moveHeuristic lower-bounds the remaining moves: the push-distance sum
// plus the walk to the closest active box (minus one, since the player
// pushes from the adjacent cell). Admissible: every remaining push is a
// move, and the player must first reach some box.
func (r *runner) moveHeuristic(player board.ID, boxes []board.ID, hPush int32) int32 {
	pr, pc := r.b.RowCol(player)
	closest := int32(-1)
	for _, id := range boxes {
		if id == board.None {
			continue
		}
		br, bc := r.b.RowCol(id)
		d := int32(abs(pr-br) + abs(pc-bc))
		if closest < 0 || d < closest {
			closest = d
		}
	}
	if closest <= 1 {
		return hPush
	}
	return hPush + closest - 1
}

// gPair returns the node's accumulated cost under the run's criterion.
func (r *runner) gPair(nd *node) costPair {
	switch r.cfg.Method {
	case MethodMoves:
		return costPair{prim: nd.gMove}
	case MethodPushesThenMoves:
		return costPair{prim: nd.gPush, sec: nd.gMove}
	case MethodMovesThenPushes:
		return costPair{prim: nd.gMove, sec: nd.gPush}
	default:
		return costPair{prim: nd.gPush}
	}
}

// fPair returns the node's f = g + h ordering key.
func (r *runner) fPair(nd *node) costPair {
	switch r.cfg.Method {
	case MethodMoves:
		return costPair{prim: nd.gMove + nd.hMove}
	case MethodPushesThenMoves:
		return costPair{prim: nd.gPush + nd.hPush, sec: nd.gMove + nd.hMove}
	case MethodMovesThenPushes:
		return costPair{prim: nd.gMove + nd.hMove, sec: nd.gPush + nd.hPush}
	default:
		return costPair{prim: nd.gPush + nd.hPush}
	}
}

// replaceSorted swaps one id for another in a sorted slice, restoring
// order with a local bubble since only a single element changed.
func replaceSorted(ids []board.ID, old, repl board.ID) {
	i := 0
	for ids[i] != old {
		i++
	}
	ids[i] = repl
	for i+1 < len(ids) && ids[i] > ids[i+1] {
		ids[i], ids[i+1] = ids[i+1], ids[i]
		i++
	}
	for i > 0 && ids[i] < ids[i-1] {
		ids[i], ids[i-1] = ids[i-1], ids[i]
		i--
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// pqItem is a heap entry under the lazy decrease-key strategy: stale
// entries stay in the heap and are skipped when popped.
type pqItem struct {
	idx  int32
	f, g costPair
	key  string
}

// nodePQ is a min-heap of pqItem ordered by f (lexicographic), breaking
// ties in favor of larger primary g: deeper nodes first means fewer
// reopened states.
type nodePQ []pqItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f.prim != pq[j].f.prim {
		return pq[i].f.prim < pq[j].f.prim
	}
	if pq[i].f.sec != pq[j].f.sec {
		return pq[i].f.sec < pq[j].f.sec
	}
	return pq[i].g.prim > pq[j].g.prim
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
