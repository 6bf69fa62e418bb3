package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Chain is one complete move of a piece: the landing cells in order (origin
// excluded) and the pieces captured on the way, one per jump. A simple move
// has a single landing and no captures.
type Chain struct {
	From     Coord
	Path     []Coord
	Captured []Coord
}

// Dest is the final landing cell, or From for an empty chain.
func (c Chain) Dest() Coord {
	if len(c.Path) == 0 {
		return c.From
	}
	return c.Path[len(c.Path)-1]
}

func (c Chain) Move() Move {
	return Move{From: c.From, To: c.Dest()}
}

func (c Chain) IsCapture() bool {
	return len(c.Captured) > 0
}

func (c Chain) extend(landing, captured Coord) Chain {
	return Chain{
		From:     c.From,
		Path:     append(slices.Clone(c.Path), landing),
		Captured: append(slices.Clone(c.Captured), captured),
	}
}

func (c Chain) String() string {
	var sb strings.Builder
	sb.WriteString(c.From.String())
	for _, p := range c.Path {
		sb.WriteString("->")
		sb.WriteString(p.String())
	}
	if len(c.Captured) > 0 {
		fmt.Fprintf(&sb, " x%v", c.Captured)
	}
	return sb.String()
}
