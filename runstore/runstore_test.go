package runstore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokotools/sokosolve/board"
	"github.com/sokotools/sokosolve/runstore"
)

func openTemp(t *testing.T) *runstore.Store {
	t.Helper()
	s, err := runstore.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := runstore.Open("")
	require.Error(t, err)
}

func TestLevelSHA_FormatIndependent(t *testing.T) {
	xsb, err := board.Parse("#####\n#@$.#\n#####", board.FormatXSB)
	require.NoError(t, err)
	custom, err := board.Parse("<><><><><>\n<>P B  _<>\n<><><><><>", board.FormatCustom)
	require.NoError(t, err)

	require.Equal(t, xsb.Render(board.FormatXSB), custom.Render(board.FormatXSB))
	assert.Equal(t, runstore.LevelSHA(xsb), runstore.LevelSHA(custom))
	assert.Len(t, runstore.LevelSHA(xsb), 64)
}

func TestStore_RecordAndRecent(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := s.Record(ctx, runstore.Run{
			LevelSHA: "abc",
			Method:   "pushes",
			Solved:   true,
			Pushes:   10 - i,
			Moves:    20 - i,
			Created:  100,
			Visited:  80,
			Elapsed:  42 * time.Millisecond,
			At:       base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	runs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// newest first
	assert.Equal(t, 8, runs[0].Pushes)
	assert.Equal(t, 9, runs[1].Pushes)
	assert.Equal(t, "abc", runs[0].LevelSHA)
	assert.Equal(t, 42*time.Millisecond, runs[0].Elapsed)
	assert.True(t, runs[0].At.After(runs[1].At))
}

func TestStore_BestFor(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, runstore.Run{
		LevelSHA: "lvl", Method: "pushes", Solved: false, Pushes: -1, Moves: -1,
	}))
	require.NoError(t, s.Record(ctx, runstore.Run{
		LevelSHA: "lvl", Method: "pushes", Solved: true, Pushes: 12, Moves: 40,
	}))
	require.NoError(t, s.Record(ctx, runstore.Run{
		LevelSHA: "lvl", Method: "pushes", Solved: true, Pushes: 12, Moves: 36,
	}))
	require.NoError(t, s.Record(ctx, runstore.Run{
		LevelSHA: "lvl", Method: "moves", Solved: true, Pushes: 14, Moves: 30,
	}))

	best, err := s.BestFor(ctx, "lvl", "pushes")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 12, best.Pushes)
	assert.Equal(t, 36, best.Moves)

	best, err = s.BestFor(ctx, "lvl", "moves-then-pushes")
	require.NoError(t, err)
	assert.Nil(t, best, "no run recorded for that method")

	best, err = s.BestFor(ctx, "other", "pushes")
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestStore_Closed(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Close())

	err := s.Record(context.Background(), runstore.Run{})
	assert.ErrorIs(t, err, runstore.ErrClosed)
	_, err = s.Recent(context.Background(), 1)
	assert.ErrorIs(t, err, runstore.ErrClosed)
	_, err = s.BestFor(context.Background(), "x", "pushes")
	assert.ErrorIs(t, err, runstore.ErrClosed)
	assert.ErrorIs(t, s.Close(), runstore.ErrClosed)
}
