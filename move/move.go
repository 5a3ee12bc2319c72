// Package move defines the pour move: transferring exactly one unit from the
// top of a source tube to the top of a destination tube.
package move

import "fmt"

// Move is an ordered (source, destination) pair of tube indexes. It is a
// small value type; it represents a single legal state transition and is not
// retained beyond the solution path and the search frontier.
type Move struct {
	source      int
	destination int
}

// New creates a pour from tube source to tube destination.
func New(source, destination int) Move {
	return Move{source: source, destination: destination}
}

// Source is the index of the tube being poured from.
func (m Move) Source() int {
	return m.source
}

// Destination is the index of the tube being poured into.
func (m Move) Destination() int {
	return m.destination
}

// String provides a string just for debugging purposes.
func (m Move) String() string {
	return fmt.Sprintf("<pour %d to %d>", m.source, m.destination)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m Move) ShortDescription() string {
	return fmt.Sprintf("%d>%d", m.source, m.destination)
}
