// Package generator creates random solvable water sort positions. It starts
// from a solved position and walks backward through predecessor states, so
// every generated puzzle is solvable in at most as many moves as the walk
// took.
package generator

import (
	"lukechampine.com/frand"

	"github.com/aquasort/watersort/game"
	"github.com/aquasort/watersort/move"
)

// Generator scrambles solved positions into puzzles.
type Generator struct {
	capacity  int
	numColors int
	numEmpty  int
}

// New creates a generator for boards with the given per-tube capacity,
// number of colors (one full tube each when solved) and number of empty
// tubes.
func New(capacity, numColors, numEmpty int) *Generator {
	return &Generator{capacity: capacity, numColors: numColors, numEmpty: numEmpty}
}

// Generate walks scrambles random predecessor steps backward from the solved
// position and returns the resulting puzzle. A walk can dead-end early if a
// state has no predecessors; the position reached so far is returned in that
// case. With scrambles == 0 the solved position itself comes back.
func (g *Generator) Generate(scrambles int) *game.Position {
	pos := game.NewSolvedPosition(g.capacity, g.numColors, g.numEmpty)
	for i := 0; i < scrambles; i++ {
		preds := predecessors(pos)
		if len(preds) == 0 {
			break
		}
		pos = preds[frand.Intn(len(preds))]
	}
	return pos
}

// predecessors enumerates every position one legal pour away from pos, i.e.
// every state S' for which some movegen-legal move turns S' into pos.
//
// The top unit of a tube j can have arrived by a pour only if it sits at the
// bottom of j (the tube was empty before) or directly on a unit of its own
// color (the tops matched before). Undoing that pour moves the unit onto any
// other tube with room -- structurally that undo is itself a pour from j,
// which is what ApplyMove performs.
func predecessors(pos *game.Position) []*game.Position {
	var preds []*game.Position
	n := pos.NumTubes()
	for j := 0; j < n; j++ {
		t := pos.Tube(j)
		if len(t) == 0 {
			continue
		}
		if len(t) > 1 && t[len(t)-2] != t[len(t)-1] {
			continue
		}
		for i := 0; i < n; i++ {
			if i == j || len(pos.Tube(i)) >= pos.Capacity() {
				continue
			}
			preds = append(preds, pos.ApplyMove(move.New(j, i)))
		}
	}
	return preds
}
