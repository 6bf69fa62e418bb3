package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"math"
)

// mateScore outranks any feature sum. Shorter wins score higher.
const mateScore = 1e6

type MinimaxOption func(m *Minimax)

// Minimax is a depth-bounded negamax with alpha-beta pruning. It searches on
// a private copy of the board, applying and reverting chains in place.
type Minimax struct {
	candidates
	depth    int
	features game.Features
	metrics  metrics.Collector
}

func WithDepth(depth int) MinimaxOption {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithFeatures(features ...game.Feature) MinimaxOption {
	return func(m *Minimax) {
		if len(features) > 0 {
			m.features = features
		}
	}
}

func WithNodeMetrics() MinimaxOption {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...MinimaxOption) *Minimax {
	m := &Minimax{
		depth:    DefaultDepth,
		features: game.DefaultFeatures,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) ChooseMove(state *game.GameState) game.Move {
	m.ensure(state)
	m.metrics.Start(1, m.depth, nil)

	board := state.Board.Clone()
	me := state.Turn
	alpha, beta := math.Inf(-1), math.Inf(1)

	var best game.Move
	bestScore := math.Inf(-1)
	for _, chain := range state.LegalMoves() {
		u := board.Apply(chain)
		score := -m.negamax(board, me.Opponent(), m.depth-1, 1, -beta, -alpha)
		board.Revert(u)

		if score > bestScore {
			bestScore = score
			best = chain.Move()
		}
		alpha = math.Max(alpha, score)
	}
	return best
}

// negamax scores board for team, the side to move.
func (m *Minimax) negamax(board *game.Board, team game.Team, depth, ply int, alpha, beta float64) float64 {
	m.metrics.AddNode()

	chains := board.LegalChains(team)
	if len(chains) == 0 {
		return -(mateScore - float64(ply))
	}
	if depth <= 0 {
		return m.features.Score(board, team)
	}

	best := math.Inf(-1)
	for _, chain := range chains {
		u := board.Apply(chain)
		score := -m.negamax(board, team.Opponent(), depth-1, ply+1, -beta, -alpha)
		board.Revert(u)

		best = math.Max(best, score)
		alpha = math.Max(alpha, score)
		if alpha >= beta {
			break
		}
	}
	return best
}

func (m *Minimax) Metric() metrics.SearchMetric {
	return m.metrics.Complete()
}
