// Package solver finds pour sequences that sort a water sort position. It
// ships two independent strategies over the shared state model and move
// generator: an exhaustive backtracking search that returns the first
// solution it reaches, and a best-first search that returns a
// shortest-move-count solution under its (deliberately rough) heuristic.
package solver

import (
	"context"
	"errors"

	"github.com/aquasort/watersort/game"
	"github.com/aquasort/watersort/move"
)

// ErrNoSolution is returned when a search exhausts every reachable unvisited
// state without finding a victory. It is a normal outcome, not a failure;
// callers check for it with errors.Is.
var ErrNoSolution = errors.New("no solution found")

// Solver is the common entry point of both search strategies. Solve returns
// the move path from the initial position to a victorious one, or
// ErrNoSolution. The returned path is empty (but non-nil) when the initial
// position is already victorious.
//
// A solve runs to completion within the call; the context is the external
// cap on that. Cancel it or give it a deadline to bound the search.
type Solver interface {
	Solve(ctx context.Context, pos *game.Position) ([]move.Move, error)
}

// Replay applies a move path to a position and returns the final position.
// Solution paths returned by either solver replay to a victorious position.
func Replay(pos *game.Position, path []move.Move) *game.Position {
	for _, m := range path {
		pos = pos.ApplyMove(m)
	}
	return pos
}
