package game

// Color is the display category of a cell, for rendering collaborators.
type Color int

const (
	ColorUnplayable Color = iota
	ColorPlayable
	ColorSelected
)

// Cell is one square of the grid. Only playable cells ever hold a piece or
// carry the transient selection flags.
type Cell struct {
	Coord    Coord
	Playable bool
	Piece    *Piece // nil when empty; never mutated in place

	Selected   bool
	Landable   bool
	Candidates []Chain // non-empty iff the cell is in the forced-move set
}

func (c *Cell) Empty() bool {
	return c.Piece == nil
}

func (c *Cell) Holds(team Team) bool {
	return c.Piece != nil && c.Piece.Team == team
}

func (c *Cell) Color() Color {
	switch {
	case !c.Playable:
		return ColorUnplayable
	case c.Selected:
		return ColorSelected
	}
	return ColorPlayable
}

func (c *Cell) clearFlags() {
	c.Selected = false
	c.Landable = false
}
