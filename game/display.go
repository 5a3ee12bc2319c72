package game

import (
	"fmt"
	"strings"
)

const displayRunes = " ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func displayRune(c Color) byte {
	if int(c) < len(displayRunes) {
		return displayRunes[c]
	}
	return '?'
}

// ToDisplayText returns a human-readable rendering of the position, one tube
// per line, for debug logs and test failure output.
func (p *Position) ToDisplayText() string {
	var sb strings.Builder
	for i, t := range p.tubes {
		fmt.Fprintf(&sb, "%2d |", i)
		for _, c := range t {
			sb.WriteByte(displayRune(c))
		}
		sb.WriteString(strings.Repeat(" ", p.capacity-len(t)))
		sb.WriteString("|\n")
	}
	return sb.String()
}
