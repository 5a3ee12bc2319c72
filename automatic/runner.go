// Package automatic runs batches of generated puzzles through both solvers
// and collects comparative stats. It is the harness used to sanity-check the
// strategies against each other; nothing in the solving core depends on it.
package automatic

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/aquasort/watersort/config"
	"github.com/aquasort/watersort/generator"
	"github.com/aquasort/watersort/solver"
)

// CompareResult is the outcome of solving one generated puzzle with both
// strategies.
type CompareResult struct {
	// BacktrackLength and AStarLength are the solution path lengths. They
	// are meaningful only when the corresponding Found flag is true.
	BacktrackLength int
	AStarLength     int
	BacktrackFound  bool
	AStarFound      bool
	BacktrackNodes  uint64
	AStarNodes      uint64
}

// BatchRunner generates puzzles and solves each with both strategies.
// Puzzles run concurrently up to the configured limit; every individual
// solve is single-threaded.
type BatchRunner struct {
	cfg *config.Config
}

// NewBatchRunner instantiates a batch runner.
func NewBatchRunner(cfg *config.Config) *BatchRunner {
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return &BatchRunner{cfg: cfg}
}

// Run generates and solves numPuzzles puzzles. Not-found outcomes are
// recorded in the results, not returned as errors; the error return is for
// context cancellation.
func (r *BatchRunner) Run(ctx context.Context, numPuzzles int) ([]CompareResult, error) {
	tstart := time.Now()
	results := make([]CompareResult, numPuzzles)

	g, ctx := errgroup.WithContext(ctx)
	limit := r.cfg.SolverConcurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)
	for i := 0; i < numPuzzles; i++ {
		i := i
		g.Go(func() error {
			// Generators and solvers are not goroutine-safe; each job
			// owns its own.
			gen := generator.New(r.cfg.Capacity, r.cfg.NumColors, r.cfg.EmptyTubes)
			pos := gen.Generate(r.cfg.ScrambleMoves)

			bt := &solver.BacktrackSolver{}
			bt.Init(nil)
			btPath, err := bt.Solve(ctx, pos)
			if err != nil && !errors.Is(err, solver.ErrNoSolution) {
				return err
			}
			results[i].BacktrackFound = err == nil
			results[i].BacktrackLength = len(btPath)
			results[i].BacktrackNodes = bt.Nodes()

			as := &solver.AStarSolver{}
			as.Init(nil)
			asPath, err := as.Solve(ctx, pos)
			if err != nil && !errors.Is(err, solver.ErrNoSolution) {
				return err
			}
			results[i].AStarFound = err == nil
			results[i].AStarLength = len(asPath)
			results[i].AStarNodes = as.Nodes()

			log.Debug().
				Int("puzzle", i).
				Int("backtrack-length", results[i].BacktrackLength).
				Int("astar-length", results[i].AStarLength).
				Uint64("backtrack-nodes", results[i].BacktrackNodes).
				Uint64("astar-nodes", results[i].AStarNodes).
				Msg("puzzle-solved")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var btTotal, asTotal, solved int
	for _, res := range results {
		if res.BacktrackFound && res.AStarFound {
			solved++
			btTotal += res.BacktrackLength
			asTotal += res.AStarLength
		}
	}
	log.Info().
		Int("puzzles", numPuzzles).
		Int("solved-by-both", solved).
		Int("backtrack-total-moves", btTotal).
		Int("astar-total-moves", asTotal).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("batch-finished")
	return results, nil
}
