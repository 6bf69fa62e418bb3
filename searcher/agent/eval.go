package agent

import (
	"checkers/game"
	"checkers/searcher"
)

// NewEvaluationAgent returns an agent that always plays the most visited move.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return &mctsAgent{mcts: mcts, pick: findMax}
}

func findMax(policy map[game.Move]float64) game.Move {
	var maxMove game.Move
	maxVisit := -1.0
	for move, visit := range policy {
		if visit > maxVisit || (visit == maxVisit && less(move, maxMove)) {
			maxVisit = visit
			maxMove = move
		}
	}
	return maxMove
}

// less orders moves so that ties between equally visited moves are broken
// the same way on every run.
func less(a, b game.Move) bool {
	if a.From != b.From {
		return a.From.X < b.From.X || (a.From.X == b.From.X && a.From.Y < b.From.Y)
	}
	return a.To.X < b.To.X || (a.To.X == b.To.X && a.To.Y < b.To.Y)
}
