package board

import (
	"fmt"
	"strings"
)

// Parse reads a textual level in the given format and returns the validated
// Board. Leading and trailing newlines are trimmed so levels can be written
// as raw string literals. Parse errors carry the offending row/column;
// validation errors come from New.
func Parse(text string, format Format) (*Board, error) {
	text = strings.Trim(text, "\n")

	var (
		grid   [][]Cell
		boxes  [][2]int
		player [2]int
		found  bool
		err    error
	)
	if format == FormatCustom {
		grid, boxes, player, found, err = parseCustom(text)
	} else {
		grid, boxes, player, found, err = parseXSB(text)
	}
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoPlayer
	}
	return New(grid, player, boxes)
}

// parseXSB parses (a subset of) the common XSB character-grid format,
// including the remover extension: r is a bare remover, R the player
// standing on it.
func parseXSB(text string) (grid [][]Cell, boxes [][2]int, player [2]int, found bool, err error) {
	seenRemover := false
	seenGoal := false
	for r, line := range strings.Split(text, "\n") {
		row := make([]Cell, 0, len(line))
		for c, ch := range line {
			cell := Floor
			switch ch {
			case '#':
				cell = Wall
			case ' ', '-', '_':
			case '.':
				cell = Goal
				seenGoal = true
			case '$', 'b':
				boxes = append(boxes, [2]int{r, c})
			case '*', 'B':
				boxes = append(boxes, [2]int{r, c})
				cell = Goal
				seenGoal = true
			case '@', 'p':
				if found {
					return nil, nil, player, false, ErrMultiplePlayers
				}
				player, found = [2]int{r, c}, true
			case '+', 'P':
				if found {
					return nil, nil, player, false, ErrMultiplePlayers
				}
				player, found = [2]int{r, c}, true
				cell = Goal
				seenGoal = true
			case 'r':
				if seenRemover {
					return nil, nil, player, false, ErrMultipleRemovers
				}
				seenRemover = true
				cell = Remover
			case 'R':
				if found {
					return nil, nil, player, false, ErrMultiplePlayers
				}
				if seenRemover {
					return nil, nil, player, false, ErrMultipleRemovers
				}
				player, found = [2]int{r, c}, true
				seenRemover = true
				cell = Remover
			default:
				return nil, nil, player, false, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidChar, ch, r, c)
			}
			row = append(row, cell)
		}
		grid = append(grid, row)
	}
	if seenRemover && seenGoal {
		return nil, nil, player, false, ErrRemoverAndGoals
	}
	return grid, boxes, player, found, nil
}

// parseCustom parses the two-characters-per-cell format: "<>" is a wall;
// otherwise the first character is ' ', 'B' (box) or 'P' (player) and the
// second is ' ' (plain floor), '_' (goal) or 'R' (remover).
func parseCustom(text string) (grid [][]Cell, boxes [][2]int, player [2]int, found bool, err error) {
	seenRemover := false
	seenGoal := false
	for r, line := range strings.Split(text, "\n") {
		row := make([]Cell, 0, len(line)/2)
		for i := 0; i+1 < len(line); i += 2 {
			c := len(row)
			c1, c2 := line[i], line[i+1]
			if c1 == '<' {
				if c2 != '>' {
					return nil, nil, player, false, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidChar, c2, r, c)
				}
				row = append(row, Wall)
				continue
			}
			switch c1 {
			case ' ':
			case 'B':
				boxes = append(boxes, [2]int{r, c})
			case 'P':
				if found {
					return nil, nil, player, false, ErrMultiplePlayers
				}
				player, found = [2]int{r, c}, true
			default:
				return nil, nil, player, false, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidChar, c1, r, c)
			}
			switch c2 {
			case ' ':
				row = append(row, Floor)
			case '_':
				row = append(row, Goal)
				seenGoal = true
			case 'R':
				if seenRemover {
					return nil, nil, player, false, ErrMultipleRemovers
				}
				seenRemover = true
				row = append(row, Remover)
			default:
				return nil, nil, player, false, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidChar, c2, r, c)
			}
		}
		grid = append(grid, row)
	}
	if seenRemover && seenGoal {
		return nil, nil, player, false, ErrRemoverAndGoals
	}
	return grid, boxes, player, found, nil
}
