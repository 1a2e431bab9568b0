package solver

import (
	"errors"
)

// Sentinel errors returned by Solve. An unsolvable level is NOT an error:
// it is reported through Result.Solved so callers can tell "proved
// unsolvable" apart from "could not finish".
var (
	// ErrNilBoard indicates a nil *board.Board was passed to Solve.
	ErrNilBoard = errors.New("solver: board is nil")

	// ErrNodeLimit indicates the node arena hit Options.MaxNodes. The
	// level's solvability is unknown at that point: this is resource
	// exhaustion, distinct from an unsolvable result.
	ErrNodeLimit = errors.New("solver: node limit reached")

	// ErrInternal indicates a broken engine invariant (for example a box
	// resting on a dead cell inside a dequeued state). The run is aborted
	// immediately; nothing is recovered. A subsequent independent Solve
	// call is unaffected, as all search state is per-run.
	ErrInternal = errors.New("solver: internal invariant violation")
)

// Method selects the optimization criterion for a whole run. It fixes both
// the cost accounting and the state normalization: push-primary methods
// collapse all player positions within one free-cell region into a single
// canonical state, move-primary methods keep the exact player cell.
type Method uint8

const (
	// MethodPushes minimizes the number of pushes.
	MethodPushes Method = iota
	// MethodMoves minimizes the number of player moves.
	MethodMoves
	// MethodPushesThenMoves minimizes pushes, breaking ties by moves.
	// The secondary count is best-found, not proven minimal, because the
	// push-level normalization discards player detail.
	MethodPushesThenMoves
	// MethodMovesThenPushes minimizes moves, breaking ties by pushes.
	MethodMovesThenPushes
)

// movePrimary reports whether moves are the primary criterion.
func (m Method) movePrimary() bool {
	return m == MethodMoves || m == MethodMovesThenPushes
}

// combined reports whether the secondary criterion participates in ordering.
func (m Method) combined() bool {
	return m == MethodPushesThenMoves || m == MethodMovesThenPushes
}

// String returns the method name as used by the CLI.
func (m Method) String() string {
	switch m {
	case MethodMoves:
		return "moves"
	case MethodPushesThenMoves:
		return "pushes-then-moves"
	case MethodMovesThenPushes:
		return "moves-then-pushes"
	default:
		return "pushes"
	}
}

// ParseMethod maps a method name back to its Method value.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "pushes":
		return MethodPushes, true
	case "moves":
		return MethodMoves, true
	case "pushes-then-moves":
		return MethodPushesThenMoves, true
	case "moves-then-pushes":
		return MethodMovesThenPushes, true
	}
	return MethodPushes, false
}

// DefaultMaxNodes caps the arena at roughly four million nodes; memory,
// not time, is the practical limit on large goal levels.
const DefaultMaxNodes = 1 << 22

// StatusFunc receives progress callbacks: depth is the primary cost of the
// first state visited at a new depth, stats a snapshot of the counters.
// The engine itself never prints.
type StatusFunc func(depth int, stats Stats)

// Options configures one Solve run.
type Options struct {
	// Method is the optimization criterion (default MethodPushes).
	Method Method
	// Moves expands the reconstructed push sequence into a full move
	// sequence by pathfinding the player between consecutive pushes.
	// Move-primary methods already produce full move sequences.
	Moves bool
	// MaxNodes caps the node arena (default DefaultMaxNodes).
	MaxNodes int
	// KeepGraph retains the explored node graph on the Result for export.
	KeepGraph bool
	// Status, if non-nil, is invoked whenever the search first visits a
	// new depth.
	Status StatusFunc
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithMethod sets the optimization criterion.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithMoves requests full move expansion of push-level solutions.
func WithMoves() Option {
	return func(o *Options) { o.Moves = true }
}

// WithMaxNodes caps the node arena. Must be positive.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("solver: MaxNodes must be positive")
		}
		o.MaxNodes = n
	}
}

// WithKeepGraph retains the explored node graph for stategraph export.
func WithKeepGraph() Option {
	return func(o *Options) { o.KeepGraph = true }
}

// WithStatus registers a progress callback.
func WithStatus(fn StatusFunc) Option {
	return func(o *Options) { o.Status = fn }
}

// DefaultOptions returns the defaults: push-optimal, push-level solution,
// DefaultMaxNodes, no retained graph, no status callback.
func DefaultOptions() Options {
	return Options{
		Method:   MethodPushes,
		MaxNodes: DefaultMaxNodes,
	}
}
