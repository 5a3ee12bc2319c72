package solver

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aquasort/watersort/game"
	"github.com/aquasort/watersort/move"
	"github.com/aquasort/watersort/movegen"
)

// BacktrackSolver is the exhaustive strategy: depth-first traversal with a
// visited set shared across the entire search, returning the first solution
// encountered. There is no optimality guarantee; which solution comes back
// is pinned down by movegen's enumeration order.
//
// The traversal uses an explicit frame stack rather than recursion, so path
// length is bounded by memory, not by goroutine stack depth. The visited set
// is global to the search (not per branch): a state reached on one branch is
// never re-expanded from a sibling branch, which keeps the state space
// finite at the cost of possibly walling off alternate solutions.
type BacktrackSolver struct {
	gen     *movegen.Generator
	visited map[string]bool
	nodes   uint64
}

// frame is one level of the depth-first traversal: a position, its legal
// plays, and a cursor into them.
type frame struct {
	pos   *game.Position
	plays []move.Move
	next  int
}

// Init initializes the solver. Pass nil to let it own a generator.
func (s *BacktrackSolver) Init(gen *movegen.Generator) error {
	if gen == nil {
		gen = movegen.NewGenerator()
	}
	s.gen = gen
	return nil
}

// Nodes returns the number of states expanded by the last Solve call.
func (s *BacktrackSolver) Nodes() uint64 {
	return s.nodes
}

// Solve searches depth-first from pos and returns the first solution path
// found, or ErrNoSolution once every reachable unvisited state is exhausted.
// Each call starts with a fresh visited set.
func (s *BacktrackSolver) Solve(ctx context.Context, pos *game.Position) ([]move.Move, error) {
	if s.gen == nil {
		s.Init(nil)
	}
	tstart := time.Now()
	s.nodes = 0
	s.visited = map[string]bool{pos.Key(): true}

	if pos.Victory() {
		log.Debug().Msg("initial-position-already-solved")
		return []move.Move{}, nil
	}

	frames := []*frame{{pos: pos, plays: copyPlays(s.gen.GenAll(pos))}}
	var path []move.Move

	for len(frames) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		top := frames[len(frames)-1]
		if top.next >= len(top.plays) {
			// This branch is exhausted; backtrack. States are immutable
			// copies, so undoing is just dropping the frame and its move.
			frames = frames[:len(frames)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}
		m := top.plays[top.next]
		top.next++

		next := top.pos.ApplyMove(m)
		key := next.Key()
		if s.visited[key] {
			continue
		}
		// Mark before descending, so sibling branches can't re-explore it.
		s.visited[key] = true
		s.nodes++
		path = append(path, m)

		if next.Victory() {
			solution := make([]move.Move, len(path))
			copy(solution, path)
			log.Debug().
				Int("path-length", len(solution)).
				Uint64("nodes", s.nodes).
				Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
				Msg("backtrack-solve-returning")
			return solution, nil
		}
		frames = append(frames, &frame{pos: next, plays: copyPlays(s.gen.GenAll(next))})
	}

	log.Debug().
		Uint64("nodes", s.nodes).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("backtrack-search-space-exhausted")
	return nil, ErrNoSolution
}

// copyPlays snapshots the generator's plays array, which the next GenAll
// call overwrites. Frames outlive many GenAll calls.
func copyPlays(plays []move.Move) []move.Move {
	c := make([]move.Move, len(plays))
	copy(c, plays)
	return c
}
