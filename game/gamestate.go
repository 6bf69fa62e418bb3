package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is everything that changes during a game. Operations that advance
// the game return a new copy; the receiver is never mutated.
type GameState struct {
	Board   *Board    // board with the forced-move set of Turn already computed
	Turn    Team      // side to move
	Players [2]Player // indexed by Team.index()
	Won     Team      // NoTeam while the game is running
}

// NewGameState starts a game on board with turn to move.
func NewGameState(board *Board, turn Team, white, black Player) *GameState {
	white.Team, black.Team = White, Black
	gs := &GameState{
		Board:   board,
		Turn:    turn,
		Players: [2]Player{white, black},
	}
	if len(board.ForcedMoves(turn)) == 0 {
		gs.Won = turn.Opponent()
	}
	return gs
}

// NewStandardGame is the opening position with White to move.
func NewStandardGame(size int) *GameState {
	return NewGameState(NewStandardBoard(size), White, NewPlayer("white", White), NewPlayer("black", Black))
}

func (gs GameState) Copy() *GameState {
	return &GameState{
		Board:   gs.Board.Clone(),
		Turn:    gs.Turn,
		Players: [2]Player{gs.Players[0].copy(), gs.Players[1].copy()},
		Won:     gs.Won,
	}
}

func (gs GameState) Player() Team {
	return gs.Turn
}

func (gs *GameState) Current() *Player {
	return &gs.Players[gs.Turn.index()]
}

func (gs *GameState) Opponent() *Player {
	return &gs.Players[gs.Turn.Opponent().index()]
}

func (gs *GameState) PlayerOf(team Team) *Player {
	return &gs.Players[team.index()]
}

// LegalMoves flattens the candidate chains of the forced-move set.
func (gs GameState) LegalMoves() []Chain {
	if gs.Won != NoTeam {
		return nil
	}
	var chains []Chain
	for _, c := range gs.Board.forced {
		chains = append(chains, gs.Board.PlayableCell(c).Candidates...)
	}
	return chains
}

// Find returns the first legal chain from m.From ending on m.To.
func (gs GameState) Find(m Move) (Chain, bool) {
	if gs.Won != NoTeam {
		return Chain{}, false
	}
	for _, chain := range gs.Board.Candidates(m.From) {
		if chain.Dest() == m.To {
			return chain, true
		}
	}
	return Chain{}, false
}

func (gs GameState) Play(chain Chain) State {
	return gs.Commit(chain)
}

// Commit applies chain for the side to move, switches turn and computes the
// next forced-move set. A side left without forced moves has lost.
func (gs GameState) Commit(chain Chain) *GameState {
	if gs.Won != NoTeam {
		panic(fmt.Sprintf("committing %v after %s won", chain, gs.Won))
	}
	next := gs.Copy()
	next.Board.ClearSelection()
	mover := next.Current()
	mover.Deselect()

	u := next.Board.Apply(chain)
	for _, t := range u.Captured {
		mover.Captured = append(mover.Captured, t.Piece)
	}

	next.Turn = gs.Turn.Opponent()
	if len(next.Board.ForcedMoves(next.Turn)) == 0 {
		next.Won = gs.Turn
		mover.Score++
	}
	return next
}

func (gs GameState) Winner() Team {
	return gs.Won
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Board.size))

	for i := range gs.Board.cells {
		var code int8
		if p := gs.Board.cells[i].Piece; p != nil {
			code = int8(p.Team)*2 + int8(p.Rank)
		}
		binary.Write(hasher, binary.LittleEndian, code)
	}

	return StateHash(hasher.Sum64())
}
