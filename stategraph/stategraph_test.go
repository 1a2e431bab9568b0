package stategraph_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokotools/sokosolve/board"
	"github.com/sokotools/sokosolve/solver"
	"github.com/sokotools/sokosolve/stategraph"
)

func solveWithGraph(t *testing.T) *solver.Graph {
	t.Helper()
	b, err := board.Parse("######\n#@$ .#\n######", board.FormatXSB)
	require.NoError(t, err)
	res, err := solver.Solve(b, solver.WithKeepGraph())
	require.NoError(t, err)
	require.True(t, res.Solved)
	require.NotNil(t, res.Graph)
	return res.Graph
}

func TestWrite_NilGraph(t *testing.T) {
	err := stategraph.Write(&bytes.Buffer{}, nil)
	require.ErrorIs(t, err, stategraph.ErrNilGraph)
	err = stategraph.WriteFile(filepath.Join(t.TempDir(), "g.dot"), nil)
	require.ErrorIs(t, err, stategraph.ErrNilGraph)
}

func TestWrite_Shape(t *testing.T) {
	g := solveWithGraph(t)

	var buf bytes.Buffer
	require.NoError(t, stategraph.Write(&buf, g))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "}"))
	assert.Equal(t, g.Len(), strings.Count(out, "[label=\"#"), "one labeled node per explored state")
	// every non-root node contributes exactly one edge
	assert.Equal(t, g.Len()-1, strings.Count(out, "->"))
	// the root label shows the initial position
	assert.Contains(t, out, `N0 [label="######\l#@$ .#\l######\l"]`)
	// the corridor solution is two pushes to the right
	assert.Contains(t, out, `[label="R"]`)
}

func TestWriteFile_PlainAndCompressed(t *testing.T) {
	g := solveWithGraph(t)

	var want bytes.Buffer
	require.NoError(t, stategraph.Write(&want, g))

	dir := t.TempDir()

	plain := filepath.Join(dir, "states.dot")
	require.NoError(t, stategraph.WriteFile(plain, g))
	got, err := os.ReadFile(plain)
	require.NoError(t, err)
	assert.Equal(t, want.Bytes(), got)

	packed := filepath.Join(dir, "states.dot.zst")
	require.NoError(t, stategraph.WriteFile(packed, g))
	raw, err := os.ReadFile(packed)
	require.NoError(t, err)
	require.NotEqual(t, want.Bytes(), raw, "zst output must actually be compressed")

	zr, err := zstd.NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer zr.Close()
	var unpacked bytes.Buffer
	_, err = unpacked.ReadFrom(zr)
	require.NoError(t, err)
	assert.Equal(t, want.Bytes(), unpacked.Bytes())
}
