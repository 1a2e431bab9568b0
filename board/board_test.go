// Package board_test contains unit tests for level parsing, validation,
// normalization, and rendering.
package board_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokotools/sokosolve/board"
)

//----------------------------------------------------------------------------//
// Parsing
//----------------------------------------------------------------------------//

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		level  string
		format board.Format
		err    error
	}{
		{"Empty", "", board.FormatXSB, board.ErrNoPlayer},
		{"NoPlayerXSB", "####\n#$.#\n####", board.FormatXSB, board.ErrNoPlayer},
		{"NoPlayerCustom", "<><><>\n<>  <>\n<><><>", board.FormatCustom, board.ErrNoPlayer},
		{"InvalidChar", "####\n#@?#\n####", board.FormatXSB, board.ErrInvalidChar},
		{"MultiplePlayers", "#####\n#@@.#\n#####", board.FormatXSB, board.ErrMultiplePlayers},
		{"MultipleRemovers", "#####\n#@rr#\n#####", board.FormatXSB, board.ErrMultipleRemovers},
		{"RemoverAndGoals", "######\n#@r$.#\n######", board.FormatXSB, board.ErrRemoverAndGoals},
		{"CustomBadWall", "<><a\n", board.FormatCustom, board.ErrInvalidChar},
		{"CustomMultiplePlayers", "<><><><>\nP P <><>\n<><><><>", board.FormatCustom, board.ErrMultiplePlayers},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.Parse(tc.level, tc.format)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Validation and normalization
//----------------------------------------------------------------------------//

func TestParse_IncompleteBorder(t *testing.T) {
	levels := []string{
		"####\n#@*\n####",
		"####\n#@ *\n####",
		"## #\n#@*#\n####",
		"####\n# *#\n#@##",
		"####\n.@$*\n####",
	}
	for _, level := range levels {
		_, err := board.Parse(level, board.FormatXSB)
		assert.ErrorIs(t, err, board.ErrLeakyBorder, "level:\n%s", level)
	}
}

func TestParse_UnreachableBoxes(t *testing.T) {
	level := `
########
#@$.#$.#
########
`
	_, err := board.Parse(level, board.FormatXSB)
	require.ErrorIs(t, err, board.ErrUnreachableBox)
}

func TestParse_BoxGoalMismatch(t *testing.T) {
	level := `
#####
#@$ #
#####
`
	_, err := board.Parse(level, board.FormatXSB)
	require.ErrorIs(t, err, board.ErrBoxGoalMismatch)
}

func TestParse_TooManyBoxes(t *testing.T) {
	// 16x16 block of box-on-goal cells: 256 boxes, one over the limit.
	var sb strings.Builder
	sb.WriteString("##################\n")
	for i := 0; i < 16; i++ {
		sb.WriteString("#****************#\n")
	}
	sb.WriteString("#@################\n###")

	_, err := board.Parse(sb.String(), board.FormatXSB)
	require.ErrorIs(t, err, board.ErrTooManyBoxes)
}

// TestParse_Normalization checks that unreachable cells become walls and
// already-satisfied unreachable box/goal pairs are dropped from play.
func TestParse_Normalization(t *testing.T) {
	level := `
*####*
#@$.*#
*####*#
`
	b, err := board.Parse(level, board.FormatXSB)
	require.NoError(t, err)

	processed := "#######\n#  ..##\n#######\n"
	assert.Equal(t, processed, b.String())

	assert.Equal(t, b.Index(1, 1), b.Player())
	assert.Equal(t, []board.ID{b.Index(1, 2), b.Index(1, 4)}, b.Boxes())
	assert.Equal(t, []board.ID{b.Index(1, 3), b.Index(1, 4)}, b.Goals())
	assert.False(t, b.RemoverMode())
}

func TestParse_RemoverMode(t *testing.T) {
	level := `
#####
#@$r#
#####
`
	b, err := board.Parse(level, board.FormatXSB)
	require.NoError(t, err)
	require.True(t, b.RemoverMode())
	assert.Equal(t, b.Index(1, 3), b.Remover())
	assert.Empty(t, b.Goals())
	assert.Equal(t, []board.ID{b.Remover()}, b.Targets())
}

//----------------------------------------------------------------------------//
// Rendering
//----------------------------------------------------------------------------//

func TestRenderState_RoundTripXSB(t *testing.T) {
	level := `
########
#@$.* .#
#  $   #
########
`
	b, err := board.Parse(level, board.FormatXSB)
	require.NoError(t, err)

	got := b.RenderState(board.FormatXSB, b.Player(), b.Boxes())
	assert.Equal(t, strings.Trim(level, "\n")+"\n", got)
}

func TestRenderState_RoundTripCustom(t *testing.T) {
	level := `
<><><><><>
<>P B  _<>
<><><><><>
`
	b, err := board.Parse(level, board.FormatCustom)
	require.NoError(t, err)

	got := b.RenderState(board.FormatCustom, b.Player(), b.Boxes())
	assert.Equal(t, strings.Trim(level, "\n")+"\n", got)
}

func TestRenderState_CrossFormat(t *testing.T) {
	xsb := "#####\n#@$.#\n#####\n"
	custom := "<><><><><>\n<>P B  _<>\n<><><><><>\n"

	b, err := board.Parse(xsb, board.FormatXSB)
	require.NoError(t, err)
	assert.Equal(t, custom, b.RenderState(board.FormatCustom, b.Player(), b.Boxes()))

	b2, err := board.Parse(custom, board.FormatCustom)
	require.NoError(t, err)
	assert.Equal(t, xsb, b2.RenderState(board.FormatXSB, b2.Player(), b2.Boxes()))
}

//----------------------------------------------------------------------------//
// Geometry helpers
//----------------------------------------------------------------------------//

func TestStep_Bounds(t *testing.T) {
	b, err := board.Parse("#####\n#@$.#\n#####", board.FormatXSB)
	require.NoError(t, err)

	id, ok := b.Step(b.Index(0, 0), board.Up)
	assert.False(t, ok)
	assert.Equal(t, board.None, id)

	id, ok = b.Step(b.Index(1, 1), board.Right)
	require.True(t, ok)
	assert.Equal(t, b.Index(1, 2), id)

	r, c := b.RowCol(id)
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
}

func TestDir_Runes(t *testing.T) {
	var sb strings.Builder
	for _, push := range []bool{false, true} {
		for _, d := range []board.Dir{board.Up, board.Right, board.Down, board.Left} {
			sb.WriteRune(d.Rune(push))
		}
	}
	assert.Equal(t, "urdlURDL", sb.String())
}

func TestDir_Opposite(t *testing.T) {
	for _, d := range board.Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		assert.Equal(t, 0, dr+or)
		assert.Equal(t, 0, dc+oc)
	}
}
