// Package board models Sokoban-family levels as immutable validated grids.
//
// What:
//
//   - Board wraps a rectangular grid of cells (wall, floor, goal, remover)
//     together with the initial player cell and box configuration.
//   - Cells are addressed by compact row-major ids (ID, a uint16), the
//     representation every later stage works with.
//   - Parse reads the two supported textual formats; RenderState writes them
//     back, optionally overlaying an arbitrary search state.
//
// Why:
//
//   - Validation happens exactly once, at construction: the search engine
//     and the distance analysis can then rely on a complete wall border and
//     on every non-wall cell being player-reachable.
//   - Everything the player can never reach is rewritten to walls and
//     already-satisfied unreachable box/goal pairs are dropped, so the
//     solver never wastes state space on them.
//
// Formats:
//
//	XSB (default): '#' wall, '@' player, '+' player-on-goal, '$' box,
//	'*' box-on-goal, '.' goal, 'r' remover, 'R' player-on-remover,
//	' ', '-' or '_' floor. Lowercase p/b and uppercase P/B aliases are
//	accepted on input.
//
//	Custom: two characters per cell. "<>" is a wall. Otherwise the first
//	character carries the content (' ' empty, 'B' box, 'P' player) and the
//	second the tile (' ' floor, '_' goal, 'R' remover). Example:
//
//	    <><><><>
//	    <>P B _<>
//	    <><><><>
//
// A level uses either ordinary goals or a single remover cell that consumes
// every box pushed onto it; mixing both is rejected.
//
// Complexity:
//
//   - Parse/New:    O(W×H) time and memory.
//   - RenderState:  O(W×H).
//
// Errors:
//
//   - Parsing: ErrInvalidChar, ErrNoPlayer, ErrMultiplePlayers,
//     ErrMultipleRemovers, ErrRemoverAndGoals, ErrTooLarge.
//   - Validation: ErrLeakyBorder, ErrUnreachableBox, ErrUnreachableGoal,
//     ErrBoxGoalMismatch, ErrTooManyBoxes.
package board
