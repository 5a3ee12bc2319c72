// Package game implements the water sort game state: an ordered set of
// capacity-bounded tubes holding colored units. It provides the operations
// the solvers are built on: the victory test, pure move application, and a
// structural key for visited-state bookkeeping.
package game

import (
	"github.com/samber/lo"

	"github.com/aquasort/watersort/move"
)

// Color identifies one unit of liquid. It is opaque; the solvers only ever
// compare colors for equality. 0 is a valid color like any other.
type Color byte

// Tube is an ordered stack of colors. The first element is the bottom of the
// tube and the last element is the top, i.e. the pourable end.
type Tube []Color

// Position is the configuration of all tubes at one point in the game.
// Tube identity is positional; moves refer to tubes by index. A Position is
// immutable once constructed -- ApplyMove returns a fresh Position and the
// solvers rely on that.
type Position struct {
	tubes    []Tube
	capacity int
}

// NewPosition copies tubes into a new Position. The capacity is the uniform
// per-tube unit limit, supplied by the game layer. The input is assumed
// valid (no tube longer than capacity); this package does not validate it.
func NewPosition(capacity int, tubes [][]Color) *Position {
	p := &Position{
		tubes:    make([]Tube, len(tubes)),
		capacity: capacity,
	}
	for i, t := range tubes {
		p.tubes[i] = make(Tube, len(t))
		copy(p.tubes[i], t)
	}
	return p
}

// NewSolvedPosition builds a victorious position with numColors full
// monochrome tubes (colors 1..numColors) followed by numEmpty empty tubes.
// It is the anchor the puzzle generator scrambles backward from.
func NewSolvedPosition(capacity, numColors, numEmpty int) *Position {
	tubes := make([]Tube, numColors+numEmpty)
	for i := 0; i < numColors; i++ {
		tubes[i] = make(Tube, capacity)
		for k := range tubes[i] {
			tubes[i][k] = Color(i + 1)
		}
	}
	for i := numColors; i < numColors+numEmpty; i++ {
		tubes[i] = Tube{}
	}
	return &Position{tubes: tubes, capacity: capacity}
}

// Capacity returns the per-tube unit limit.
func (p *Position) Capacity() int {
	return p.capacity
}

// NumTubes returns the number of tubes.
func (p *Position) NumTubes() int {
	return len(p.tubes)
}

// Tube returns the tube at index i. The caller must not modify it.
func (p *Position) Tube(i int) Tube {
	return p.tubes[i]
}

// Top returns the pourable color of tube i. The second value is false if the
// tube is empty.
func (p *Position) Top(i int) (Color, bool) {
	t := p.tubes[i]
	if len(t) == 0 {
		return 0, false
	}
	return t[len(t)-1], true
}

// Victory returns true iff every tube is either empty or filled to exactly
// capacity with a single repeated color.
func (p *Position) Victory() bool {
	return lo.EveryBy(p.tubes, func(t Tube) bool {
		if len(t) == 0 {
			return true
		}
		if len(t) != p.capacity {
			return false
		}
		for _, c := range t {
			if c != t[0] {
				return false
			}
		}
		return true
	})
}

// ApplyMove returns a new Position with the top unit of the move's source
// tube popped and pushed onto its destination tube. The receiver is never
// mutated. The move must come from movegen for this exact position; the only
// structural requirement enforced here by construction is that the source is
// non-empty and the destination has room in the backing array.
func (p *Position) ApplyMove(m move.Move) *Position {
	next := p.Copy()
	src := next.tubes[m.Source()]
	unit := src[len(src)-1]
	next.tubes[m.Source()] = src[:len(src)-1]
	next.tubes[m.Destination()] = append(next.tubes[m.Destination()], unit)
	return next
}

// Copy deep-copies the position.
func (p *Position) Copy() *Position {
	c := &Position{
		tubes:    make([]Tube, len(p.tubes)),
		capacity: p.capacity,
	}
	for i, t := range p.tubes {
		// Allocate full capacity so ApplyMove's append never shares a
		// backing array with another position.
		c.tubes[i] = make(Tube, len(t), p.capacity)
		copy(c.tubes[i], t)
	}
	return c
}

// Key packs the full contents of the position into a string usable as a map
// key. Two positions with the same tubes in the same order always produce
// the same key, regardless of how they were constructed. Each tube is
// prefixed with its fill level so that tube boundaries stay unambiguous for
// any color values.
func (p *Position) Key() string {
	buf := make([]byte, 0, len(p.tubes)*(p.capacity+1))
	for _, t := range p.tubes {
		buf = append(buf, byte(len(t)))
		for _, c := range t {
			buf = append(buf, byte(c))
		}
	}
	return string(buf)
}

// UnitCounts returns the number of units of each color on the board. Every
// legal move conserves these counts.
func (p *Position) UnitCounts() map[Color]int {
	counts := make(map[Color]int)
	for _, t := range p.tubes {
		for _, c := range t {
			counts[c]++
		}
	}
	return counts
}
