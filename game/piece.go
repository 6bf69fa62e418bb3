package game

import "fmt"

// Team owns pieces. White starts on the high rows and moves toward y == 0,
// Black starts on the low rows and moves toward y == size-1.
type Team int8

const (
	NoTeam Team = iota
	White
	Black
)

func (t Team) Opponent() Team {
	switch t {
	case White:
		return Black
	case Black:
		return White
	}
	return NoTeam
}

// Forward is the y step of a man's simple move.
func (t Team) Forward() int {
	if t == White {
		return -1
	}
	return 1
}

// PromotionRow is the opponent's back rank.
func (t Team) PromotionRow(size int) int {
	if t == White {
		return 0
	}
	return size - 1
}

func (t Team) index() int {
	return int(t) - 1
}

func (t Team) String() string {
	switch t {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

type Rank int8

const (
	Man Rank = iota
	King
)

func (r Rank) String() string {
	if r == King {
		return "king"
	}
	return "man"
}

// Piece has no identity beyond its team and rank; the cell holding it owns it.
type Piece struct {
	Team Team
	Rank Rank
}

// Char is the placement/snapshot letter of the piece.
func (p Piece) Char() byte {
	var c byte = 'w'
	if p.Team == Black {
		c = 'b'
	}
	if p.Rank == King {
		c -= 'a' - 'A'
	}
	return c
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Team, p.Rank)
}

// pieceFromChar decodes a placement letter; '.' is a valid empty cell.
func pieceFromChar(c rune) (piece *Piece, ok bool) {
	switch c {
	case '.':
		return nil, true
	case 'w':
		return &Piece{Team: White, Rank: Man}, true
	case 'b':
		return &Piece{Team: Black, Rank: Man}, true
	case 'W':
		return &Piece{Team: White, Rank: King}, true
	case 'B':
		return &Piece{Team: Black, Rank: King}, true
	}
	return nil, false
}
