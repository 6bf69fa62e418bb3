package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"checkers/utils"

	"github.com/rs/zerolog/log"
)

// Agent is an MCTS-backed strategy that reports the metrics of its last search.
type Agent interface {
	searcher.Strategy
	searcher.Reporter
}

type mctsAgent struct {
	mcts   *searcher.MCTS
	legal  []game.Move
	metric metrics.SearchMetric
	pick   func(policy map[game.Move]float64) game.Move
}

func (a *mctsAgent) Update(state *game.GameState) {
	a.legal = a.legal[:0]
	for _, chain := range state.LegalMoves() {
		a.legal = append(a.legal, chain.Move())
	}
}

func (a *mctsAgent) ChooseMove(state *game.GameState) game.Move {
	if len(a.legal) == 0 {
		a.Update(state)
	}
	policy, metric := a.mcts.Simulate(state)
	a.metric = metric

	move := a.pick(policy)
	if utils.FindIndex(a.legal, move) < 0 {
		log.Warn().Msgf("search returned %v outside the candidate list, playing %v", move, a.legal[0])
		move = a.legal[0]
	}
	a.mcts.Played(move)
	a.legal = a.legal[:0]
	return move
}

func (a *mctsAgent) Metric() metrics.SearchMetric {
	return a.metric
}
