package agent

import (
	"checkers/game"
	"checkers/searcher"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func move(fx, fy, tx, ty int) game.Move {
	return game.Move{From: game.Coord{X: fx, Y: fy}, To: game.Coord{X: tx, Y: ty}}
}

func TestFindMax(t *testing.T) {
	t.Run("most visited move", func(t *testing.T) {
		policy := map[game.Move]float64{
			move(1, 6, 0, 5): 3,
			move(1, 6, 2, 5): 10,
			move(3, 6, 4, 5): 7,
		}
		require.Equal(t, move(1, 6, 2, 5), findMax(policy))
	})

	t.Run("ties are broken by board order", func(t *testing.T) {
		policy := map[game.Move]float64{
			move(3, 6, 4, 5): 5,
			move(1, 6, 2, 5): 5,
			move(1, 6, 0, 5): 5,
		}
		for i := 0; i < 20; i++ {
			require.Equal(t, move(1, 6, 0, 5), findMax(policy))
		}
	})
}

func TestAdjustTemperature(t *testing.T) {
	policy := map[game.Move]float64{
		move(1, 6, 0, 5): 1,
		move(1, 6, 2, 5): 3,
	}

	t.Run("temperature 1 normalizes visits", func(t *testing.T) {
		got := adjustTemperature(policy, 1)
		require.InDelta(t, 0.25, got[move(1, 6, 0, 5)], 1e-9)
		require.InDelta(t, 0.75, got[move(1, 6, 2, 5)], 1e-9)
	})

	t.Run("low temperature sharpens", func(t *testing.T) {
		got := adjustTemperature(policy, 0.5)
		require.InDelta(t, 0.1, got[move(1, 6, 0, 5)], 1e-9)
		require.InDelta(t, 0.9, got[move(1, 6, 2, 5)], 1e-9)
	})

	t.Run("probabilities sum to one", func(t *testing.T) {
		sum := 0.0
		for _, p := range adjustTemperature(policy, 2) {
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("all zero visits", func(t *testing.T) {
		got := adjustTemperature(map[game.Move]float64{move(1, 6, 0, 5): 0}, 1)
		require.Equal(t, 0.0, got[move(1, 6, 0, 5)])
		require.False(t, math.IsNaN(got[move(1, 6, 0, 5)]))
	})
}

func TestSample(t *testing.T) {
	t.Run("certain move", func(t *testing.T) {
		policy := map[game.Move]float64{
			move(1, 6, 0, 5): 0,
			move(1, 6, 2, 5): 1,
		}
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 50; i++ {
			require.Equal(t, move(1, 6, 2, 5), sample(policy, rng))
		}
	})

	t.Run("reproducible for a seed", func(t *testing.T) {
		policy := map[game.Move]float64{
			move(1, 6, 0, 5): 0.2,
			move(1, 6, 2, 5): 0.3,
			move(3, 6, 4, 5): 0.5,
		}
		first := rand.New(rand.NewSource(11))
		second := rand.New(rand.NewSource(11))
		for i := 0; i < 50; i++ {
			require.Equal(t, sample(policy, first), sample(policy, second))
		}
	})
}

func TestAgents(t *testing.T) {
	t.Run("evaluation agent plays a legal move", func(t *testing.T) {
		state := game.NewStandardGame(8)
		a := NewEvaluationAgent(searcher.NewMCTS(2, searcher.WithEpisodes(100), searcher.WithSeed(1), searcher.WithMetrics()))
		a.Update(state)

		m := a.ChooseMove(state)

		_, ok := state.Find(m)
		require.True(t, ok)
		require.Equal(t, 100, a.Metric().Episodes)
	})

	t.Run("training agent plays a legal move", func(t *testing.T) {
		state := game.NewStandardGame(8)
		a := NewTrainingAgent(searcher.NewMCTS(1, searcher.WithEpisodes(50), searcher.WithSeed(1)), 1, rand.NewSource(3))
		a.Update(state)

		m := a.ChooseMove(state)

		_, ok := state.Find(m)
		require.True(t, ok)
	})

	t.Run("training agent rejects zero temperature", func(t *testing.T) {
		require.Panics(t, func() {
			NewTrainingAgent(searcher.NewMCTS(1, searcher.WithEpisodes(1)), 0, rand.NewSource(1))
		})
	})
}
