package solver

import (
	"github.com/samber/lo"

	"github.com/aquasort/watersort/game"
)

// Estimate scores a position's distance from victory for the best-first
// search. Each non-empty tube contributes +1 if it holds two or more
// distinct colors (misplaced), and independently +1 if its distinct-color
// count is strictly below the tube capacity (incomplete). The two conditions
// overlap and are summed, not deduplicated, so mixed tubes weigh double.
//
// The estimate is a cheap proxy for remaining work, not an admissible bound;
// it can overestimate (a full monochrome tube still counts as incomplete
// whenever capacity > 1). AStarSolver's results are best-effort shortest
// because of this, and that trade-off is intentional. Keep the formula as
// is; tightening it changes solver output, not just its asymptotics.
func Estimate(pos *game.Position) int {
	misplaced := 0
	incomplete := 0
	for i := 0; i < pos.NumTubes(); i++ {
		t := pos.Tube(i)
		if len(t) == 0 {
			continue
		}
		distinct := len(lo.Uniq(t))
		if distinct > 1 {
			misplaced++
		}
		if distinct < pos.Capacity() {
			incomplete++
		}
	}
	return misplaced + incomplete
}
