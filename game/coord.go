package game

import "fmt"

type Coord struct {
	X int
	Y int
}

func (c Coord) Step(d Direction, n int) Coord {
	return Coord{X: c.X + d.DX*n, Y: c.Y + d.DY*n}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit diagonal step.
type Direction struct {
	DX int
	DY int
}

var Diagonals = [4]Direction{
	{DX: 1, DY: -1},
	{DX: 1, DY: 1},
	{DX: -1, DY: 1},
	{DX: -1, DY: -1},
}

func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

func (d Direction) bit() dirSet {
	for i, diag := range Diagonals {
		if diag == d {
			return 1 << i
		}
	}
	panic(fmt.Sprintf("not a diagonal direction: %+v", d))
}

// dirSet is a bitmask over Diagonals.
type dirSet uint8

func (s dirSet) has(d Direction) bool {
	return s&d.bit() != 0
}

func (s dirSet) with(d Direction) dirSet {
	return s | d.bit()
}

// directionOf returns the unit diagonal from a toward b, ok is false when the
// two coordinates do not share a diagonal.
func directionOf(a, b Coord) (Direction, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 || abs(dx) != abs(dy) {
		return Direction{}, false
	}
	return Direction{DX: dx / abs(dx), DY: dy / abs(dy)}, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
