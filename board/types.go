// Package board defines core types, sentinel errors, and limits for the
// level model of github.com/sokotools/sokosolve.
package board

import (
	"errors"
)

// Sentinel errors returned by parsing.
var (
	// ErrInvalidChar indicates a character that is not part of the selected format.
	ErrInvalidChar = errors.New("board: invalid character")
	// ErrNoPlayer indicates the level contains no player cell.
	ErrNoPlayer = errors.New("board: no player")
	// ErrMultiplePlayers indicates more than one player cell.
	ErrMultiplePlayers = errors.New("board: multiple players")
	// ErrMultipleRemovers indicates more than one remover cell; only one is allowed.
	ErrMultipleRemovers = errors.New("board: multiple removers")
	// ErrRemoverAndGoals indicates a level mixing a remover with ordinary goals.
	ErrRemoverAndGoals = errors.New("board: both remover and goals")
	// ErrTooLarge indicates a grid wider or taller than MaxDim cells.
	ErrTooLarge = errors.New("board: grid dimensions exceed limit")
)

// Sentinel errors returned by validation (Board construction).
var (
	// ErrLeakyBorder indicates the player can walk out of bounds: the level
	// is not fully enclosed by walls.
	ErrLeakyBorder = errors.New("board: incomplete border")
	// ErrUnreachableBox indicates a box the player cannot reach that is not
	// already resting on a goal.
	ErrUnreachableBox = errors.New("board: unreachable box not on goal")
	// ErrUnreachableGoal indicates a goal the player cannot reach that has
	// no box resting on it.
	ErrUnreachableGoal = errors.New("board: unreachable goal without box")
	// ErrBoxGoalMismatch indicates differing counts of reachable boxes and
	// goals in a non-remover level.
	ErrBoxGoalMismatch = errors.New("board: box and goal counts differ")
	// ErrTooManyBoxes indicates more than MaxBoxes reachable boxes.
	ErrTooManyBoxes = errors.New("board: too many boxes")
)

const (
	// MaxDim is the maximum grid width and height. Cell ids are uint16
	// row-major indices, so MaxDim*MaxDim must stay below the None sentinel.
	MaxDim = 255
	// MaxBoxes is the maximum number of reachable boxes per level.
	MaxBoxes = 255
)

// Cell classifies a single grid cell.
type Cell uint8

const (
	// Wall cells are impassable for both the player and boxes.
	Wall Cell = iota
	// Floor cells are plain walkable cells.
	Floor
	// Goal cells must each hold a box for a standard level to be solved.
	Goal
	// Remover is the single special goal cell that consumes any box pushed
	// onto it. A level has either goals or one remover, never both.
	Remover
)

// String returns the bare-map XSB character for the cell.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "#"
	case Goal:
		return "."
	case Remover:
		return "r"
	default:
		return " "
	}
}

// ID is a compact cell identifier: the row-major index r*width+c.
type ID uint16

// None is the ID sentinel: no remover on the board, or a box absorbed by
// the remover. It sorts after every valid cell id.
const None ID = 0xFFFF

// Dir is one of the four push/move directions.
type Dir uint8

const (
	Up Dir = iota
	Right
	Down
	Left
)

// Directions lists all four directions in a stable order.
var Directions = [4]Dir{Up, Right, Down, Left}

// Delta returns the row/column offset of the direction.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	default:
		return 0, -1
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Right
	}
}

// Rune returns the LURD letter for the direction: lowercase for a plain
// move, uppercase for a push.
func (d Dir) Rune(push bool) rune {
	var r rune
	switch d {
	case Up:
		r = 'u'
	case Right:
		r = 'r'
	case Down:
		r = 'd'
	default:
		r = 'l'
	}
	if push {
		return r - 'a' + 'A'
	}
	return r
}

// String returns the lowercase LURD letter.
func (d Dir) String() string { return string(d.Rune(false)) }

// Format selects one of the two supported textual level formats.
type Format uint8

const (
	// FormatXSB is the common character-grid format: # wall, @ player,
	// + player-on-goal, $ box, * box-on-goal, . goal, r remover,
	// R player-on-remover, space/-/_ floor.
	FormatXSB Format = iota
	// FormatCustom is the two-characters-per-cell format: "<>" wall;
	// first char ' ', 'B' (box) or 'P' (player); second char ' ',
	// '_' (goal) or 'R' (remover).
	FormatCustom
)

// String returns the format name as used by the CLI.
func (f Format) String() string {
	if f == FormatCustom {
		return "custom"
	}
	return "xsb"
}
