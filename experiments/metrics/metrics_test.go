package metrics

import (
	"checkers/game"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 10, game.EvaluateMaterial)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 25; j++ {
					c.AddEpisode()
					c.AddNode()
				}
				c.AddFullPlayout()
			}()
		}
		wg.Wait()
		c.SetTreeReset(true)

		got := c.Complete()
		require.Equal(t, 4, got.Goroutines)
		require.Equal(t, 10, got.Cutoff)
		require.Equal(t, 100, got.Episodes)
		require.Equal(t, 100, got.Nodes)
		require.Equal(t, 4, got.FullPlayouts)
		require.True(t, got.IsTreeReset)
	})

	t.Run("start clears counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1, nil)
		c.AddEpisode()
		c.Start(1, 1, nil)

		require.Zero(t, c.Complete().Episodes)
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1, 1, nil)
		c.AddEpisode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	t.Run("writes csv files", func(t *testing.T) {
		root := t.TempDir()
		w, err := NewWriter(root, "unit")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(w.Dir(), filepath.Join(root, "unit")))

		id := uuid.New()
		move := game.Move{From: game.Coord{X: 1, Y: 6}, To: game.Coord{X: 0, Y: 5}}
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Strategy: "minimax", Depth: 4}}))
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			ID: id, Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{StartingPlayer: game.White, Winner: game.Black, Duration: time.Second, TotalMoves: 42},
		}}))
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
			Game:       id,
			MoveMetric: MoveMetric{Step: 1, Player: game.White, Move: move, SearchMetric: SearchMetric{Nodes: 12}},
		}}))

		configs, err := os.ReadFile(filepath.Join(w.Dir(), "agent_configs.csv"))
		require.NoError(t, err)
		require.Equal(t, "id,strategy,depth,goroutines,duration,episodes,cutoff,seed\n1,minimax,4,0,0s,0,0,0\n", string(configs))

		games, err := os.ReadFile(filepath.Join(w.Dir(), "game_records.csv"))
		require.NoError(t, err)
		require.Contains(t, string(games), id.String()+",1,2,"+game.White.String()+","+game.Black.String())
		require.Contains(t, string(games), ",1s,42\n")

		f, err := os.Open(filepath.Join(w.Dir(), "move_records.csv"))
		require.NoError(t, err)
		defer f.Close()
		moves, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, moves, 2)
		require.Equal(t, []string{id.String(), "1", "white", "(1,6)", "(0,5)"}, moves[1][:5])
		require.Equal(t, "12", moves[1][8])
	})
}
