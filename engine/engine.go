package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

type Engine interface {
	// Run plays a game till there's a winner or the turn limit is reached
	Run() (winner game.Team, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
