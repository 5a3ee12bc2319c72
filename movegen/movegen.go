// Package movegen contains the move-generating functions. For a given
// position it enumerates every legal single-unit pour.
package movegen

import (
	"github.com/aquasort/watersort/game"
	"github.com/aquasort/watersort/move"
)

// Generator generates legal pours for a position. The zero value is ready to
// use; a single Generator may be reused across calls but not across
// goroutines, as it owns the plays array.
type Generator struct {
	plays []move.Move
}

// NewGenerator returns a new move generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenAll generates every legal move for the given position and returns them.
// A pour (i, j) is legal iff i != j, tube i is non-empty, and tube j is
// either empty or below capacity with its top color matching tube i's top.
//
// Enumeration order is ascending source index, then ascending destination
// index. The order is part of the contract: the backtracking solver's result
// depends on it whenever a puzzle has more than one solution.
//
// The generator owns the returned slice; it is overwritten by the next
// GenAll call.
func (g *Generator) GenAll(pos *game.Position) []move.Move {
	g.plays = g.plays[:0]
	n := pos.NumTubes()
	for i := 0; i < n; i++ {
		top, ok := pos.Top(i)
		if !ok {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dstTop, dstOccupied := pos.Top(j)
			if !dstOccupied ||
				(len(pos.Tube(j)) < pos.Capacity() && dstTop == top) {
				g.plays = append(g.plays, move.New(i, j))
			}
		}
	}
	return g.plays
}

// Plays returns the moves generated by the last GenAll call.
func (g *Generator) Plays() []move.Move {
	return g.plays
}
