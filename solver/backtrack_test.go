package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquasort/watersort/game"
	"github.com/aquasort/watersort/move"
)

func TestBacktrackAlreadySolved(t *testing.T) {
	s := &BacktrackSolver{}
	require.NoError(t, s.Init(nil))

	pos := game.NewPosition(2, [][]game.Color{{1, 1}, {}})
	require.True(t, pos.Victory())

	path, err := s.Solve(context.Background(), pos)
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)
}

func TestBacktrackThreeTubes(t *testing.T) {
	s := &BacktrackSolver{}
	require.NoError(t, s.Init(nil))

	pos := game.NewPosition(2, [][]game.Color{{1, 2}, {2, 1}, {}})
	path, err := s.Solve(context.Background(), pos)
	require.NoError(t, err)

	// Depth-first in movegen order is fully deterministic, so the exact
	// path is pinned down.
	assert.Equal(t, []move.Move{
		move.New(0, 2), move.New(1, 0), move.New(1, 2),
	}, path)
	assert.True(t, Replay(pos, path).Victory())
	// The input position is untouched by the whole search.
	assert.False(t, pos.Victory())
}

func TestBacktrackNoSolution(t *testing.T) {
	s := &BacktrackSolver{}
	require.NoError(t, s.Init(nil))

	// Both tubes full and mismatched: no legal moves, not victorious.
	pos := game.NewPosition(2, [][]game.Color{{1, 2}, {2, 1}})
	path, err := s.Solve(context.Background(), pos)
	assert.ErrorIs(t, err, ErrNoSolution)
	assert.Nil(t, path)

	// A lone partially-filled tube is equally stuck.
	pos = game.NewPosition(2, [][]game.Color{{1}})
	_, err = s.Solve(context.Background(), pos)
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestBacktrackDeterministic(t *testing.T) {
	pos := game.NewPosition(3, [][]game.Color{{1, 2, 1}, {2, 1, 2}, {}, {}})

	s1 := &BacktrackSolver{}
	require.NoError(t, s1.Init(nil))
	p1, err1 := s1.Solve(context.Background(), pos)
	require.NoError(t, err1)

	s2 := &BacktrackSolver{}
	require.NoError(t, s2.Init(nil))
	p2, err2 := s2.Solve(context.Background(), pos)
	require.NoError(t, err2)

	assert.Equal(t, p1, p2)
	assert.Equal(t, s1.Nodes(), s2.Nodes())
	assert.True(t, Replay(pos, p1).Victory())
}

func TestBacktrackContextCanceled(t *testing.T) {
	s := &BacktrackSolver{}
	require.NoError(t, s.Init(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pos := game.NewPosition(2, [][]game.Color{{1, 2}, {2, 1}, {}})
	_, err := s.Solve(ctx, pos)
	assert.ErrorIs(t, err, context.Canceled)
}
