package game

import (
	"fmt"
	"iter"

	"golang.org/x/exp/slices"
)

// Board owns the size×size grid and the forced-move set of the side to move.
type Board struct {
	size   int
	cells  []Cell // indexed x*size + y
	forced []Coord
}

// NewBoard returns an empty board. Cells with an odd x+y are playable.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("invalid board size %d", size))
	}
	b := &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			b.cells[x*size+y] = Cell{
				Coord:    Coord{X: x, Y: y},
				Playable: (x+y)%2 == 1,
			}
		}
	}
	return b
}

// NewStandardBoard returns the opening position: Black men on the low rows,
// White men on the high rows, two empty rows in between.
func NewStandardBoard(size int) *Board {
	return MustParse(size, DefaultPlacement(size))
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

// Cell looks up a cell; out of range coordinates yield nil, false.
func (b *Board) Cell(c Coord) (*Cell, bool) {
	if !b.inBounds(c) {
		return nil, false
	}
	return &b.cells[c.X*b.size+c.Y], true
}

// PlayableCell panics when c is not a playable cell of the board.
func (b *Board) PlayableCell(c Coord) *Cell {
	cell, ok := b.Cell(c)
	if !ok {
		panic(fmt.Sprintf("coordinate %v is off the board", c))
	}
	if !cell.Playable {
		panic(fmt.Sprintf("cell %v is not playable", c))
	}
	return cell
}

// Cells lazily yields every cell matching pred, x outer and y inner.
func (b *Board) Cells(pred func(*Cell) bool) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range b.cells {
			cell := &b.cells[i]
			if pred != nil && !pred(cell) {
				continue
			}
			if !yield(cell) {
				return
			}
		}
	}
}

// CellsBetween returns the strictly interior cells from start to end.
func (b *Board) CellsBetween(start, end Coord) []*Cell {
	d, ok := directionOf(start, end)
	if !ok {
		panic(fmt.Sprintf("%v and %v are not on a shared diagonal", start, end))
	}
	n := abs(end.X - start.X)
	out := make([]*Cell, 0, n-1)
	for i := 1; i < n; i++ {
		cell, ok := b.Cell(start.Step(d, i))
		if !ok {
			break
		}
		out = append(out, cell)
	}
	return out
}

// Place puts p on c, replacing any occupant.
func (b *Board) Place(c Coord, p Piece) {
	b.PlayableCell(c).Piece = &p
}

func (b *Board) Remove(c Coord) {
	b.PlayableCell(c).Piece = nil
}

// SimulateMove moves the occupant of start to end without any legality check.
func (b *Board) SimulateMove(start, end Coord) {
	from := b.PlayableCell(start)
	to := b.PlayableCell(end)
	piece := from.Piece
	from.Piece = nil
	to.Piece = piece
}

// SimulateCapture moves start to end and reports the first opposing piece
// jumped over. The jumped piece stays on the board as a blocker until the
// chain is committed, so SimulateMove(end, start) restores the board.
func (b *Board) SimulateCapture(start, end Coord) (Coord, bool) {
	b.SimulateMove(start, end)
	mover := b.PlayableCell(end).Piece
	if mover == nil {
		return Coord{}, false
	}
	for _, cell := range b.CellsBetween(start, end) {
		if cell.Holds(mover.Team.Opponent()) {
			return cell.Coord, true
		}
	}
	return Coord{}, false
}

func (b *Board) Count(team Team) int {
	n := 0
	for range b.Cells(func(c *Cell) bool { return c.Holds(team) }) {
		n++
	}
	return n
}

func (b *Board) CountRank(team Team, rank Rank) int {
	n := 0
	for range b.Cells(func(c *Cell) bool { return c.Holds(team) && c.Piece.Rank == rank }) {
		n++
	}
	return n
}

// Forced returns the forced-move set computed by the last ForcedMoves call.
func (b *Board) Forced() []Coord {
	return slices.Clone(b.forced)
}

// ClearSelection drops every selected and landable flag.
func (b *Board) ClearSelection() {
	for i := range b.cells {
		b.cells[i].clearFlags()
	}
}

// Clone deep copies the grid. Pieces and chains are immutable and shared.
func (b *Board) Clone() *Board {
	return &Board{
		size:   b.size,
		cells:  slices.Clone(b.cells),
		forced: slices.Clone(b.forced),
	}
}

// Equal compares the piece layout only, ignoring transient flags.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		p, q := b.cells[i].Piece, other.cells[i].Piece
		if (p == nil) != (q == nil) {
			return false
		}
		if p != nil && *p != *q {
			return false
		}
	}
	return true
}
