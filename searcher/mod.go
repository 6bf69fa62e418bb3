package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

// Strategy picks moves for a computer-controlled side. Update refreshes the
// candidate list from the forced-move set of state; ChooseMove returns one of
// the candidates as a (start, destination) pair.
type Strategy interface {
	Update(state *game.GameState)
	ChooseMove(state *game.GameState) game.Move
}

// Reporter is implemented by strategies that measure their last search.
type Reporter interface {
	Metric() metrics.SearchMetric
}

type Node interface {
	SelectOrExpand(state game.State) (child Node, childState game.State, selected bool)
	Backup(player game.Team, score float64) Node
	Visits() float64
	ApplyLoss()
}

// candidates holds one (start, destination) pair per chain of the forced-move
// set, in board order.
type candidates struct {
	moves []game.Move
}

func (c *candidates) Update(state *game.GameState) {
	c.moves = c.moves[:0]
	for _, chain := range state.LegalMoves() {
		c.moves = append(c.moves, chain.Move())
	}
}

func (c *candidates) Candidates() []game.Move {
	return c.moves
}

// ensure refreshes the candidates from state, so a pick never comes from a
// position the strategy was updated on earlier.
func (c *candidates) ensure(state *game.GameState) {
	c.Update(state)
	if len(c.moves) == 0 {
		panic("choosing a move without legal moves")
	}
}
