package agent

import (
	"checkers/game"
	"checkers/searcher"
	"math"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// NewTrainingAgent returns an agent for self-play that samples moves in
// proportion to visits^(1/temperature).
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, src rand.Source) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	rng := rand.New(src)
	return &mctsAgent{
		mcts: mcts,
		pick: func(policy map[game.Move]float64) game.Move {
			return sample(adjustTemperature(policy, temperature), rng)
		},
	}
}

func adjustTemperature(policy map[game.Move]float64, temperature float64) map[game.Move]float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[game.Move]float64, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[move] = prob
	}
	if sum == 0 {
		return adjusted
	}
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

func sample(policy map[game.Move]float64, rng *rand.Rand) game.Move {
	// map order is random; sort for a reproducible draw
	moves := make([]game.Move, 0, len(policy))
	for move := range policy {
		moves = append(moves, move)
	}
	slices.SortFunc(moves, func(a, b game.Move) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	})

	sampled := rng.Float64()
	cumulative := 0.0
	var lastMove game.Move
	for _, move := range moves {
		lastMove = move
		cumulative += policy[move]
		if sampled < cumulative {
			return move
		}
	}
	return lastMove // Fallback in case of rounding errors
}
