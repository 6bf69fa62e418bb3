package experiments

import (
	"checkers/config"
	"checkers/experiments/metrics"
)

// RunThroughputExperiment measures episodes per search as goroutines grow.
// Both sides share a config for the same playing strength and a similar game
// length.
func RunThroughputExperiment(settings Settings) (string, error) {
	configs := []metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 4, 8, 16, 32} {
		configs = append(configs, metrics.AgentConfig{
			ID:         i + 1,
			Strategy:   config.MCTS,
			Goroutines: goroutines,
			Duration:   TimeBudget,
		})
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, c := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{c, c})
	}
	return Run("throughput", settings, configs, matchUps)
}
