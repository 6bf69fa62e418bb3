package game

import "fmt"

// Taken is a piece removed by a committed capture.
type Taken struct {
	Coord Coord
	Piece Piece
}

// Undo is the reversible record of one applied chain.
type Undo struct {
	Chain    Chain
	Piece    Piece
	Captured []Taken
	Promoted bool
}

// Apply commits chain on the board: the piece travels to the final landing,
// every captured piece is removed, and a man whose final landing is the
// opponent's back rank becomes a king. Intermediate landings never promote.
func (b *Board) Apply(chain Chain) Undo {
	from := b.PlayableCell(chain.From)
	if from.Empty() {
		panic(fmt.Sprintf("applying chain %v from an empty cell", chain))
	}
	u := Undo{
		Chain:    chain,
		Piece:    *from.Piece,
		Captured: make([]Taken, 0, len(chain.Captured)),
	}
	dest := chain.Dest()
	b.SimulateMove(chain.From, dest)
	for _, c := range chain.Captured {
		cell := b.PlayableCell(c)
		if cell.Empty() {
			panic(fmt.Sprintf("chain %v captures empty cell %v", chain, c))
		}
		u.Captured = append(u.Captured, Taken{Coord: c, Piece: *cell.Piece})
		cell.Piece = nil
	}
	if u.Piece.Rank == Man && dest.Y == u.Piece.Team.PromotionRow(b.size) {
		b.Place(dest, Piece{Team: u.Piece.Team, Rank: King})
		u.Promoted = true
	}
	return u
}

// Revert is the exact inverse of the Apply that produced u.
func (b *Board) Revert(u Undo) {
	b.Remove(u.Chain.Dest())
	b.Place(u.Chain.From, u.Piece)
	for _, t := range u.Captured {
		b.Place(t.Coord, t.Piece)
	}
}
