package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func boardWith(size int, pieces map[Coord]Piece) *Board {
	b := NewBoard(size)
	for c, p := range pieces {
		b.Place(c, p)
	}
	return b
}

var (
	whiteMan  = Piece{Team: White, Rank: Man}
	blackMan  = Piece{Team: Black, Rank: Man}
	whiteKing = Piece{Team: White, Rank: King}
	blackKing = Piece{Team: Black, Rank: King}
)

func TestCaptureChains(t *testing.T) {
	t.Run("single jump", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 5, Y: 4}: whiteMan,
			{X: 6, Y: 5}: blackMan,
		})

		chains := b.CaptureChains(Coord{X: 5, Y: 4})

		require.Equal(t, []Chain{{
			From:     Coord{X: 5, Y: 4},
			Path:     []Coord{{X: 7, Y: 6}},
			Captured: []Coord{{X: 6, Y: 5}},
		}}, chains)
	})

	t.Run("no capture available", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 5, Y: 4}: whiteMan,
			{X: 6, Y: 5}: blackMan,
			{X: 7, Y: 6}: blackMan,
		})
		require.Nil(t, b.CaptureChains(Coord{X: 5, Y: 4}), "landing cell is occupied")
		require.Nil(t, b.CaptureChains(Coord{X: 4, Y: 5}), "empty cell has no chains")
	})

	t.Run("double jump keeps only the longest chain", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 2, Y: 7}: whiteMan,
			{X: 3, Y: 6}: blackMan,
			{X: 5, Y: 4}: blackMan,
			{X: 1, Y: 6}: blackMan,
		})

		chains := b.CaptureChains(Coord{X: 2, Y: 7})

		require.Equal(t, []Chain{{
			From:     Coord{X: 2, Y: 7},
			Path:     []Coord{{X: 4, Y: 5}, {X: 6, Y: 3}},
			Captured: []Coord{{X: 3, Y: 6}, {X: 5, Y: 4}},
		}}, chains)
	})

	t.Run("a piece is never captured twice", func(t *testing.T) {
		// four black men on the edges of a diamond: the man goes round once
		// and stops on its origin, capturing each exactly once
		b := boardWith(10, map[Coord]Piece{
			{X: 3, Y: 6}: whiteMan,
			{X: 4, Y: 5}: blackMan,
			{X: 4, Y: 3}: blackMan,
			{X: 2, Y: 3}: blackMan,
			{X: 2, Y: 5}: blackMan,
		})

		chains := b.CaptureChains(Coord{X: 3, Y: 6})

		require.Len(t, chains, 2, "one loop in each rotation")
		for _, chain := range chains {
			require.Len(t, chain.Captured, 4)
			require.Equal(t, Coord{X: 3, Y: 6}, chain.Dest())
			seen := map[Coord]bool{}
			for _, c := range chain.Captured {
				require.False(t, seen[c], "captured %v twice", c)
				seen[c] = true
			}
		}
	})

	t.Run("king lands anywhere behind the captured piece", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 0, Y: 9}: whiteKing,
			{X: 2, Y: 7}: blackMan,
		})

		chains := b.CaptureChains(Coord{X: 0, Y: 9})

		require.Len(t, chains, 7)
		for i, chain := range chains {
			require.Equal(t, []Coord{{X: 2, Y: 7}}, chain.Captured)
			require.Equal(t, Coord{X: 3 + i, Y: 6 - i}, chain.Dest())
		}
	})

	t.Run("king cannot jump two pieces in a row", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 0, Y: 9}: whiteKing,
			{X: 2, Y: 7}: blackMan,
			{X: 3, Y: 6}: blackMan,
		})
		require.Nil(t, b.CaptureChains(Coord{X: 0, Y: 9}))
		require.Equal(t, []Chain{{From: Coord{X: 0, Y: 9}, Path: []Coord{{X: 1, Y: 8}}}},
			b.PieceChains(Coord{X: 0, Y: 9}))
	})

	t.Run("king cannot jump its own piece", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 0, Y: 9}: whiteKing,
			{X: 2, Y: 7}: whiteMan,
			{X: 4, Y: 5}: blackMan,
		})
		require.Nil(t, b.CaptureChains(Coord{X: 0, Y: 9}))
	})
}

func TestSimpleMoves(t *testing.T) {
	t.Run("men step forward only", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 4, Y: 5}: whiteMan,
			{X: 4, Y: 3}: blackMan,
		})

		require.ElementsMatch(t, []Chain{
			{From: Coord{X: 4, Y: 5}, Path: []Coord{{X: 5, Y: 4}}},
			{From: Coord{X: 4, Y: 5}, Path: []Coord{{X: 3, Y: 4}}},
		}, b.SimpleMoves(Coord{X: 4, Y: 5}))
		require.ElementsMatch(t, []Chain{
			{From: Coord{X: 4, Y: 3}, Path: []Coord{{X: 5, Y: 4}}},
			{From: Coord{X: 4, Y: 3}, Path: []Coord{{X: 3, Y: 4}}},
		}, b.SimpleMoves(Coord{X: 4, Y: 3}))
	})

	t.Run("kings slide along every diagonal", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 0, Y: 9}: blackKing,
			{X: 4, Y: 5}: whiteMan,
		})
		chains := b.SimpleMoves(Coord{X: 0, Y: 9})
		require.Len(t, chains, 3)
		require.Equal(t, Coord{X: 3, Y: 6}, chains[2].Dest())
	})
}

func TestForcedMoves(t *testing.T) {
	t.Run("the piece with the most captures is forced", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 2, Y: 7}: whiteMan,
			{X: 3, Y: 6}: blackMan,
			{X: 5, Y: 4}: blackMan,
			{X: 7, Y: 8}: whiteMan,
			{X: 8, Y: 7}: blackMan,
			{X: 0, Y: 9}: whiteMan,
		})

		forced := b.ForcedMoves(White)

		require.Equal(t, []Coord{{X: 2, Y: 7}}, forced)
		require.Len(t, b.Candidates(Coord{X: 2, Y: 7}), 1)
		require.Empty(t, b.Candidates(Coord{X: 7, Y: 8}), "single capture is not the maximum")
		require.Empty(t, b.Candidates(Coord{X: 0, Y: 9}), "simple moves are not allowed while a capture exists")
	})

	t.Run("without captures every movable piece is forced", func(t *testing.T) {
		b := NewStandardBoard(10)

		forced := b.ForcedMoves(White)

		require.Len(t, forced, 5, "only the front row can move")
		for _, c := range forced {
			require.Equal(t, 6, c.Y)
		}
		require.Len(t, b.LegalChains(White), 9)
	})

	t.Run("recomputing clears stale candidates", func(t *testing.T) {
		b := NewStandardBoard(10)
		b.ForcedMoves(White)
		b.ForcedMoves(Black)
		for cell := range b.Cells(func(c *Cell) bool { return c.Holds(White) }) {
			require.Empty(t, cell.Candidates)
		}
		b.ClearForcedMoves()
		require.Empty(t, b.Forced())
	})

	t.Run("blocked side has no forced move", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 0, Y: 1}: whiteMan,
			{X: 1, Y: 0}: blackMan,
		})
		require.Empty(t, b.ForcedMoves(White))
		require.NotEmpty(t, b.ForcedMoves(Black))
	})
}

func TestGeneratorProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		size := 6 + 2*rng.Intn(3)
		pieces := randomPieces(rng, size)
		b := boardWith(size, pieces)
		before := b.Clone()

		for c, p := range pieces {
			chains := b.CaptureChains(c)
			require.True(t, b.Equal(before), "board mutated by generator for %v on %s", c, before)

			want := bruteMaxCaptures(size, pieces, c, p)
			if want == 0 {
				require.Empty(t, chains)
				continue
			}
			require.NotEmpty(t, chains)
			for _, chain := range chains {
				require.Len(t, chain.Captured, want, "chain %v on %s", chain, before)
				requireValidChain(t, before, chain)
			}
		}

		b.ForcedMoves(White)
		b.ForcedMoves(Black)
		require.True(t, b.Equal(before))
	}
}

func randomPieces(rng *rand.Rand, size int) map[Coord]Piece {
	kinds := []Piece{whiteMan, blackMan, whiteKing, blackKing}
	pieces := map[Coord]Piece{}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 1 && rng.Intn(3) == 0 {
				pieces[Coord{X: x, Y: y}] = kinds[rng.Intn(len(kinds))]
			}
		}
	}
	return pieces
}

// bruteMaxCaptures explores every capture sequence on a plain map, without
// any direction pruning, and returns the longest one found.
func bruteMaxCaptures(size int, pieces map[Coord]Piece, from Coord, p Piece) int {
	inside := func(c Coord) bool { return c.X >= 0 && c.Y >= 0 && c.X < size && c.Y < size }
	taken := map[Coord]bool{}
	occupied := map[Coord]bool{}
	for c := range pieces {
		occupied[c] = true
	}

	var search func(at Coord) int
	search = func(at Coord) int {
		best := 0
		for _, d := range Diagonals {
			i := 1
			if p.Rank == King {
				for inside(at.Step(d, i)) && !occupied[at.Step(d, i)] {
					i++
				}
			}
			over := at.Step(d, i)
			if !inside(over) || !occupied[over] || taken[over] || pieces[over].Team == p.Team {
				continue
			}
			for j := i + 1; inside(at.Step(d, j)) && !occupied[at.Step(d, j)]; j++ {
				land := at.Step(d, j)
				taken[over] = true
				occupied[at], occupied[land] = false, true
				best = max(best, 1+search(land))
				occupied[at], occupied[land] = true, false
				taken[over] = false
				if p.Rank == Man {
					break
				}
			}
		}
		return best
	}
	return search(from)
}

func requireValidChain(t *testing.T, b *Board, chain Chain) {
	t.Helper()
	require.Len(t, chain.Path, len(chain.Captured))
	piece := b.PlayableCell(chain.From).Piece
	at := chain.From
	for i, land := range chain.Path {
		between := b.CellsBetween(at, land)
		var opponents []Coord
		for _, cell := range between {
			if cell.Coord == chain.From {
				continue
			}
			require.True(t, cell.Empty() || cell.Holds(piece.Team.Opponent()), "jumping own piece at %v", cell.Coord)
			if cell.Holds(piece.Team.Opponent()) {
				opponents = append(opponents, cell.Coord)
			}
		}
		require.Equal(t, []Coord{chain.Captured[i]}, opponents, "each jump takes exactly one piece")
		at = land
	}
}

func TestApplyRevert(t *testing.T) {
	t.Run("promotion on the final landing", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 1, Y: 2}: whiteMan,
			{X: 2, Y: 1}: blackMan,
		})
		before := b.Clone()
		chains := b.CaptureChains(Coord{X: 1, Y: 2})
		require.Len(t, chains, 1)

		u := b.Apply(chains[0])

		require.True(t, u.Promoted)
		require.Equal(t, &whiteKing, b.PlayableCell(Coord{X: 3, Y: 0}).Piece)
		require.True(t, b.PlayableCell(Coord{X: 2, Y: 1}).Empty())
		require.True(t, b.PlayableCell(Coord{X: 1, Y: 2}).Empty())

		b.Revert(u)
		require.True(t, b.Equal(before))
	})

	t.Run("passing over the back rank does not promote", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{
			{X: 1, Y: 2}: whiteMan,
			{X: 2, Y: 1}: blackMan,
			{X: 4, Y: 1}: blackMan,
		})
		before := b.Clone()
		chains := b.CaptureChains(Coord{X: 1, Y: 2})
		require.Equal(t, []Chain{{
			From:     Coord{X: 1, Y: 2},
			Path:     []Coord{{X: 3, Y: 0}, {X: 5, Y: 2}},
			Captured: []Coord{{X: 2, Y: 1}, {X: 4, Y: 1}},
		}}, chains)

		u := b.Apply(chains[0])

		require.False(t, u.Promoted)
		require.Equal(t, &whiteMan, b.PlayableCell(Coord{X: 5, Y: 2}).Piece)
		require.Equal(t, 0, b.Count(Black))

		b.Revert(u)
		require.True(t, b.Equal(before))
	})

	t.Run("black promotes on the last row", func(t *testing.T) {
		b := boardWith(10, map[Coord]Piece{{X: 1, Y: 8}: blackMan})
		u := b.Apply(Chain{From: Coord{X: 1, Y: 8}, Path: []Coord{{X: 0, Y: 9}}})
		require.True(t, u.Promoted)
		require.Equal(t, 1, b.CountRank(Black, King))
	})

	t.Run("applying from an empty cell panics", func(t *testing.T) {
		b := NewBoard(10)
		require.Panics(t, func() { b.Apply(Chain{From: Coord{X: 1, Y: 2}, Path: []Coord{{X: 2, Y: 1}}}) })
	})
}
