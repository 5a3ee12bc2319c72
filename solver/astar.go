package solver

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aquasort/watersort/game"
	"github.com/aquasort/watersort/move"
	"github.com/aquasort/watersort/movegen"
)

// AStarSolver is the informed strategy: best-first search ordered by
// f = g + h, where g is the move count from the start and h is Estimate.
// Each state's costs are fixed at first discovery and never relaxed; a state
// is expanded at most once even if a cheaper path to it turns up later.
// Combined with the non-admissible heuristic this makes the result a
// best-effort shortest path rather than a provably optimal one -- by the
// same token it is what keeps the search fast and its output stable.
type AStarSolver struct {
	gen *movegen.Generator

	// Cost bookkeeping per discovered state, keyed by structural position
	// key. Written once per state, on discovery.
	gscore map[string]int
	hscore map[string]int
	fscore map[string]int

	nodes uint64
}

// Init initializes the solver. Pass nil to let it own a generator.
func (s *AStarSolver) Init(gen *movegen.Generator) error {
	if gen == nil {
		gen = movegen.NewGenerator()
	}
	s.gen = gen
	return nil
}

// Nodes returns the number of states discovered by the last Solve call.
func (s *AStarSolver) Nodes() uint64 {
	return s.nodes
}

// Solve searches best-first from pos and returns a shortest-found solution
// path, or ErrNoSolution when the frontier empties without reaching victory.
// Each call starts with fresh cost maps and a fresh visited set.
func (s *AStarSolver) Solve(ctx context.Context, pos *game.Position) ([]move.Move, error) {
	if s.gen == nil {
		s.Init(nil)
	}
	tstart := time.Now()
	s.nodes = 0

	startKey := pos.Key()
	h := Estimate(pos)
	s.gscore = map[string]int{startKey: 0}
	s.hscore = map[string]int{startKey: h}
	s.fscore = map[string]int{startKey: h}
	visited := map[string]bool{startKey: true}

	fr := &frontier{}
	fr.push(&frontierEntry{pos: pos, path: []move.Move{}, g: 0, f: h})

	for fr.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur := fr.pop()
		if cur.pos.Victory() {
			log.Debug().
				Int("path-length", len(cur.path)).
				Uint64("nodes", s.nodes).
				Int("frontier-size", fr.Len()).
				Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
				Msg("astar-solve-returning")
			return cur.path, nil
		}

		for _, m := range s.gen.GenAll(cur.pos) {
			next := cur.pos.ApplyMove(m)
			key := next.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			s.nodes++

			g := cur.g + 1
			h := Estimate(next)
			s.gscore[key] = g
			s.hscore[key] = h
			s.fscore[key] = g + h

			path := make([]move.Move, len(cur.path)+1)
			copy(path, cur.path)
			path[len(cur.path)] = m
			fr.push(&frontierEntry{pos: next, path: path, g: g, f: g + h})
		}
	}

	log.Debug().
		Uint64("nodes", s.nodes).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("astar-frontier-exhausted")
	return nil, ErrNoSolution
}
