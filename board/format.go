package board

import (
	"strings"
)

// String renders the bare board (no boxes, no player) in XSB format.
func (b *Board) String() string { return b.Render(FormatXSB) }

// Render renders the bare board in the given format.
func (b *Board) Render(format Format) string {
	return b.RenderState(format, None, nil)
}

// RenderState renders the board with a state overlay: the player at the
// given cell and boxes at the given cells. Pass player==None and boxes==nil
// to render the empty board. Absorbed boxes (id None) are skipped, so a
// mid-search remover state renders without surprises.
func (b *Board) RenderState(format Format, player ID, boxes []ID) string {
	onBox := make(map[ID]bool, len(boxes))
	for _, id := range boxes {
		if id != None {
			onBox[id] = true
		}
	}

	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			id := b.Index(r, c)
			if format == FormatCustom {
				sb.WriteString(customCell(b.cells[id], onBox[id], id == player))
			} else {
				sb.WriteByte(xsbCell(b.cells[id], onBox[id], id == player))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func xsbCell(cell Cell, box, player bool) byte {
	switch cell {
	case Wall:
		return '#'
	case Goal:
		switch {
		case box:
			return '*'
		case player:
			return '+'
		default:
			return '.'
		}
	case Remover:
		if player {
			return 'R'
		}
		return 'r'
	default:
		switch {
		case box:
			return '$'
		case player:
			return '@'
		default:
			return ' '
		}
	}
}

func customCell(cell Cell, box, player bool) string {
	if cell == Wall {
		return "<>"
	}
	c1, c2 := byte(' '), byte(' ')
	switch {
	case box:
		c1 = 'B'
	case player:
		c1 = 'P'
	}
	switch cell {
	case Goal:
		c2 = '_'
	case Remover:
		c2 = 'R'
	}
	return string([]byte{c1, c2})
}
