package game

import "strings"

// Render draws the board as text, row y == 0 on top. Empty playable cells are
// '.', non-playable cells ' ', a selected piece is wrapped in brackets and
// landable cells are marked '*'.
func Render(b *Board) string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			cell, _ := b.Cell(Coord{X: x, Y: y})
			left, right := byte(' '), byte(' ')
			if cell.Selected {
				left, right = '[', ']'
			}
			sb.WriteByte(left)
			switch {
			case !cell.Playable:
				sb.WriteByte(' ')
			case cell.Piece != nil:
				sb.WriteByte(cell.Piece.Char())
			case cell.Landable:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(right)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PixelToCoord maps a pointer position to a cell for a board drawn with
// square cells of cellSize pixels starting at offset. ok is false outside
// the board.
func PixelToCoord(b *Board, px, py, cellSize int, offset Coord) (Coord, bool) {
	if cellSize <= 0 || px < offset.X || py < offset.Y {
		return Coord{}, false
	}
	c := Coord{X: (px - offset.X) / cellSize, Y: (py - offset.Y) / cellSize}
	return c, b.inBounds(c)
}
