package board

import (
	"fmt"
	"sort"
)

// Board is the validated, immutable puzzle definition consumed by the
// analysis and search stages. Construction normalizes the level:
// every cell the player cannot reach is rewritten to a wall, and
// unreachable box/goal pairs that are already satisfied are dropped.
// No mutation happens after New returns.
type Board struct {
	width, height int
	cells         []Cell // row-major, len == width*height
	goals         []ID   // sorted; empty in remover mode
	remover       ID     // None unless remover mode
	boxes         []ID   // initial configuration, sorted
	player        ID     // initial player cell
}

// New validates a raw grid and builds a Board.
//
// Validation (in order):
//  1. grid must fit MaxDim×MaxDim (ErrTooLarge); short rows are padded
//     with floor, which a well-formed (wall-enclosed) level never reaches.
//  2. A flood fill from the player must not leave the grid (ErrLeakyBorder):
//     this is the only place bounds are checked, everything downstream can
//     rely on a complete wall border.
//  3. Every unreachable box must rest on a goal (ErrUnreachableBox) and
//     every unreachable goal must hold a box (ErrUnreachableGoal); such
//     satisfied pairs are removed from play along with the cells themselves.
//  4. Reachable box and goal counts must match in non-remover mode
//     (ErrBoxGoalMismatch), and stay within MaxBoxes (ErrTooManyBoxes).
//
// Goals and the remover are read from the grid itself; boxes and the player
// are positions into it. Complexity: O(W×H).
func New(grid [][]Cell, player [2]int, boxes [][2]int) (*Board, error) {
	height := len(grid)
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	if height == 0 || width == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrLeakyBorder)
	}
	if height > MaxDim || width > MaxDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	b := &Board{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		remover: None,
	}
	for r, row := range grid {
		for c := range b.cells[r*width : (r+1)*width] {
			if c < len(row) {
				b.cells[r*width+c] = row[c]
			} else {
				b.cells[r*width+c] = Floor // ragged edge, unreachable if enclosed
			}
		}
	}
	b.player = b.Index(player[0], player[1])

	// 2) Player flood fill with signed bounds checks.
	reach := make([]bool, len(b.cells))
	stack := []ID{b.player}
	reach[b.player] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r, c := b.RowCol(cur)
		for _, d := range Directions {
			dr, dc := d.Delta()
			nr, nc := r+dr, c+dc
			if nr < 0 || nc < 0 || nr >= height || nc >= width {
				return nil, fmt.Errorf("%w: open at row %d col %d", ErrLeakyBorder, r, c)
			}
			n := b.Index(nr, nc)
			if !reach[n] && b.cells[n] != Wall {
				reach[n] = true
				stack = append(stack, n)
			}
		}
	}

	// 3) Partition boxes and goals by reachability.
	onBox := make(map[ID]bool, len(boxes))
	for _, rc := range boxes {
		onBox[b.Index(rc[0], rc[1])] = true
	}
	for id := range onBox {
		if reach[id] {
			b.boxes = append(b.boxes, id)
		} else if b.cells[id] != Goal {
			r, c := b.RowCol(id)
			return nil, fmt.Errorf("%w: row %d col %d", ErrUnreachableBox, r, c)
		}
	}
	for id, cell := range b.cells {
		switch cell {
		case Goal:
			if reach[id] {
				b.goals = append(b.goals, ID(id))
			} else if !onBox[ID(id)] {
				r, c := b.RowCol(ID(id))
				return nil, fmt.Errorf("%w: row %d col %d", ErrUnreachableGoal, r, c)
			}
		case Remover:
			if reach[id] {
				b.remover = ID(id)
			}
		}
	}

	// Rewrite everything unreachable to wall so downstream stages can
	// iterate non-wall cells without tracking reachability themselves.
	for id := range b.cells {
		if !reach[id] {
			b.cells[id] = Wall
		}
	}

	// 4) Count checks on what remains in play.
	if b.remover == None && len(b.boxes) != len(b.goals) {
		return nil, fmt.Errorf("%w: %d boxes, %d goals", ErrBoxGoalMismatch, len(b.boxes), len(b.goals))
	}
	if len(b.boxes) > MaxBoxes {
		return nil, fmt.Errorf("%w: %d", ErrTooManyBoxes, len(b.boxes))
	}

	sort.Slice(b.boxes, func(i, j int) bool { return b.boxes[i] < b.boxes[j] })
	sort.Slice(b.goals, func(i, j int) bool { return b.goals[i] < b.goals[j] })

	return b, nil
}

// Width returns the grid width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the grid height in cells.
func (b *Board) Height() int { return b.height }

// Size returns the total cell count width×height.
func (b *Board) Size() int { return len(b.cells) }

// Index maps (row, col) to a row-major cell id.
func (b *Board) Index(r, c int) ID { return ID(r*b.width + c) }

// RowCol converts a cell id back to (row, col).
func (b *Board) RowCol(id ID) (r, c int) { return int(id) / b.width, int(id) % b.width }

// At returns the cell classification at id.
func (b *Board) At(id ID) Cell { return b.cells[id] }

// Step returns the neighboring cell id in direction d and whether it lies
// within the grid. Validated boards are wall-enclosed, so stepping from any
// non-wall cell always stays in bounds.
func (b *Board) Step(id ID, d Dir) (ID, bool) {
	r, c := b.RowCol(id)
	dr, dc := d.Delta()
	r, c = r+dr, c+dc
	if r < 0 || c < 0 || r >= b.height || c >= b.width {
		return None, false
	}
	return b.Index(r, c), true
}

// Player returns the initial player cell.
func (b *Board) Player() ID { return b.player }

// Boxes returns a copy of the initial box configuration, sorted by id.
func (b *Board) Boxes() []ID {
	out := make([]ID, len(b.boxes))
	copy(out, b.boxes)
	return out
}

// Goals returns a copy of the goal cell ids, sorted. Empty in remover mode.
func (b *Board) Goals() []ID {
	out := make([]ID, len(b.goals))
	copy(out, b.goals)
	return out
}

// Remover returns the remover cell id, or None for standard goal levels.
func (b *Board) Remover() ID { return b.remover }

// RemoverMode reports whether the level is solved by removing boxes rather
// than covering goals.
func (b *Board) RemoverMode() bool { return b.remover != None }

// Targets returns the goal set, or the single remover, as one slice.
func (b *Board) Targets() []ID {
	if b.RemoverMode() {
		return []ID{b.remover}
	}
	return b.Goals()
}
