package solver

import (
	"container/heap"

	"github.com/aquasort/watersort/game"
	"github.com/aquasort/watersort/move"
)

// frontierEntry is one discovered-but-not-yet-expanded state in the
// best-first search, together with the path that first reached it and its
// cost bookkeeping.
type frontierEntry struct {
	pos  *game.Position
	path []move.Move
	g    int // accumulated cost from the start
	f    int // g plus the heuristic estimate
	seq  uint64
}

// frontier is a min-heap of entries keyed by f. Ties on f are broken by
// insertion order (seq), so results are reproducible run to run.
type frontier struct {
	entries []*frontierEntry
	nextSeq uint64
}

func (fr *frontier) Len() int { return len(fr.entries) }

func (fr *frontier) Less(i, j int) bool {
	if fr.entries[i].f != fr.entries[j].f {
		return fr.entries[i].f < fr.entries[j].f
	}
	return fr.entries[i].seq < fr.entries[j].seq
}

func (fr *frontier) Swap(i, j int) {
	fr.entries[i], fr.entries[j] = fr.entries[j], fr.entries[i]
}

func (fr *frontier) Push(x any) {
	fr.entries = append(fr.entries, x.(*frontierEntry))
}

func (fr *frontier) Pop() any {
	e := fr.entries[len(fr.entries)-1]
	fr.entries[len(fr.entries)-1] = nil
	fr.entries = fr.entries[:len(fr.entries)-1]
	return e
}

func (fr *frontier) push(e *frontierEntry) {
	e.seq = fr.nextSeq
	fr.nextSeq++
	heap.Push(fr, e)
}

func (fr *frontier) pop() *frontierEntry {
	return heap.Pop(fr).(*frontierEntry)
}
