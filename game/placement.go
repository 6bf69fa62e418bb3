package game

import (
	"fmt"
	"strconv"
	"strings"
)

// playableOrder lists playable cells row by row (y outer, x inner). Each row
// starts one column further or closer than the previous one, following the
// checkerboard coloring. Placement strings and snapshots share this order.
func (b *Board) playableOrder() []Coord {
	out := make([]Coord, 0, b.size*b.size/2)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if (x+y)%2 == 1 {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// Parse builds a board from a run-length placement string over
// {w, b, W, B, .}, each letter optionally prefixed by a repeat count.
// Playable cells not covered by the string are left empty.
func Parse(size int, placement string) (*Board, error) {
	b := NewBoard(size)
	order := b.playableOrder()

	next := 0
	count, counted := 0, false
	for pos, r := range placement {
		if r >= '0' && r <= '9' {
			count = count*10 + int(r-'0')
			counted = true
			if count > len(order) {
				return nil, fmt.Errorf("%w: repeat count at offset %d exceeds the %d playable cells", ErrBadPlacement, pos, len(order))
			}
			continue
		}
		piece, ok := pieceFromChar(r)
		if !ok {
			return nil, fmt.Errorf("%w: unknown character %q at offset %d", ErrBadPlacement, r, pos)
		}
		n := 1
		if counted {
			n = count
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: zero repeat count at offset %d", ErrBadPlacement, pos)
		}
		if next+n > len(order) {
			return nil, fmt.Errorf("%w: %d cells described, board has %d playable cells", ErrBadPlacement, next+n, len(order))
		}
		for i := 0; i < n; i++ {
			b.PlayableCell(order[next]).Piece = piece
			next++
		}
		count, counted = 0, false
	}
	if counted {
		return nil, fmt.Errorf("%w: dangling repeat count %d", ErrBadPlacement, count)
	}
	return b, nil
}

// MustParse is Parse for placements known to be valid; it panics otherwise.
func MustParse(size int, placement string) *Board {
	b, err := Parse(size, placement)
	if err != nil {
		panic(err)
	}
	return b
}

// DefaultPlacement is the opening placement string for a size×size board.
func DefaultPlacement(size int) string {
	rows := (size - 2) / 2
	b := NewBoard(size)
	chars := make([]byte, 0, size*size/2)
	for _, c := range b.playableOrder() {
		switch {
		case c.Y < rows:
			chars = append(chars, 'b')
		case c.Y >= size-rows:
			chars = append(chars, 'w')
		default:
			chars = append(chars, '.')
		}
	}
	return runLength(chars)
}

// String is the board snapshot: one letter per playable cell in placement
// order, runs collapsed to <count><char>. Parse(size, b.String()) rebuilds it.
func (b *Board) String() string {
	order := b.playableOrder()
	chars := make([]byte, len(order))
	for i, c := range order {
		chars[i] = '.'
		if p := b.PlayableCell(c).Piece; p != nil {
			chars[i] = p.Char()
		}
	}
	return runLength(chars)
}

func runLength(chars []byte) string {
	var sb strings.Builder
	for i := 0; i < len(chars); {
		j := i
		for j < len(chars) && chars[j] == chars[i] {
			j++
		}
		if n := j - i; n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
		sb.WriteByte(chars[i])
		i = j
	}
	return sb.String()
}
