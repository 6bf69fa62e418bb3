package searcher

import (
	"checkers/game"
	"checkers/meta"
	"math"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for a won playout
const Loss = -Win // Reward for a lost playout, also the virtual loss

const DefaultDepth = meta.DEPTH        // Minimax plies
const DefaultCutoff = meta.WITH_CUTOFF // Rollout plies before falling back to evaluation

// uct scores children of a node visited N times.
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

// evaluate is q/n + sqrt(c^2*ln(N)/n).
func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	return q/n + math.Sqrt(u.numerator/n)
}

// computeReward turns a playout score for player into a reward for perspective.
func computeReward(player game.Team, score float64, perspective game.Team) float64 {
	if player == perspective {
		return score
	}
	return -score
}
