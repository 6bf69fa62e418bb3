package experiments

import (
	"checkers/config"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"checkers/searcher/agent"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const TimeBudget = 10 * time.Millisecond

// Settings are shared by every game of an experiment.
type Settings struct {
	Root      string // output directory
	Games     int    // per match-up
	BoardSize int
	Placement string // empty for the standard opening
	MaxTurns  int
}

var strategyConfigs = []metrics.AgentConfig{
	{ID: 1, Strategy: config.Random},
	{ID: 2, Strategy: config.Minimax, Depth: 2},
	{ID: 3, Strategy: config.Minimax, Depth: 4},
	{ID: 4, Strategy: config.MCTS, Goroutines: 4, Duration: TimeBudget},
}

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Strategy: config.MCTS, Goroutines: 1, Duration: TimeBudget},
	{ID: 2, Strategy: config.MCTS, Goroutines: 4, Duration: TimeBudget},
	{ID: 3, Strategy: config.MCTS, Goroutines: 8, Duration: TimeBudget},
	{ID: 4, Strategy: config.MCTS, Goroutines: 16, Duration: TimeBudget},
}

// RunStrategyExperiment pairs every strategy against the random baseline.
func RunStrategyExperiment(settings Settings) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Strategy: config.Random}
	matchUps := [][]metrics.AgentConfig{}
	for _, c := range strategyConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, c})
	}
	return Run("strategy", settings, append(strategyConfigs, baseline), matchUps)
}

// RunParallelizationExperiment pairs each MCTS agent against the sequential one.
func RunParallelizationExperiment(settings Settings) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Strategy: config.MCTS, Goroutines: 1, Duration: TimeBudget}
	matchUps := [][]metrics.AgentConfig{}
	for _, c := range parallelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, c})
	}
	return Run("parallelization", settings, append(parallelConfigs, baseline), matchUps)
}

func RunCutoffExperiment(settings Settings) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Strategy: config.MCTS, Goroutines: 8, Duration: TimeBudget, Cutoff: settings.MaxTurns}
	cutoffConfigs := []metrics.AgentConfig{
		{ID: 1, Strategy: config.MCTS, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: baseline.Cutoff},
		{ID: 2, Strategy: config.MCTS, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 10},
		{ID: 3, Strategy: config.MCTS, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 40},
		{ID: 4, Strategy: config.MCTS, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 80},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, c := range cutoffConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, c})
	}
	return Run("cutoff", settings, append(cutoffConfigs, baseline), matchUps)
}

// Run plays settings.Games games per match-up, alternating colours, and
// writes the agent configs, game records and move records as CSV. It returns
// the directory holding the files.
func Run(name string, settings Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		if len(matchUp) != 2 {
			return "", fmt.Errorf("match-up %d has %d agents, want 2", mi+1, len(matchUp))
		}
		log.Info().Msgf("starting match-up %d of %d between agent%d and agent%d...", mi+1, len(matchUps), matchUp[0].ID, matchUp[1].ID)

		for i := 0; i < settings.Games; i++ {
			white, black := matchUp[0], matchUp[1]
			if i%2 == 1 {
				white, black = black, white
			}

			state, err := newGame(settings, white, black)
			if err != nil {
				return "", err
			}
			e := engine.LocalEngine(state, NewStrategy(white), NewStrategy(black), settings.MaxTurns)
			winner, gameMetric, moveMetrics := e.Run()

			id := uuid.New()
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Agent1:     white.ID,
				Agent2:     black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: id, MoveMetric: mm})
			}

			log.Info().Msgf("completed match-up %d game %d of %d with winner: %s", mi+1, i+1, settings.Games, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(settings.Root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return writer.Dir(), nil
}

func newGame(settings Settings, white, black metrics.AgentConfig) (*game.GameState, error) {
	board := game.NewStandardBoard(settings.BoardSize)
	if settings.Placement != "" {
		var err error
		board, err = game.Parse(settings.BoardSize, settings.Placement)
		if err != nil {
			return nil, err
		}
	}
	return game.NewGameState(board, game.White,
		game.NewPlayer(fmt.Sprintf("agent%d", white.ID), game.White),
		game.NewPlayer(fmt.Sprintf("agent%d", black.ID), game.Black)), nil
}

// NewStrategy builds the strategy an agent config describes.
func NewStrategy(c metrics.AgentConfig) searcher.Strategy {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	switch c.Strategy {
	case config.Random:
		return searcher.NewRandom(rand.NewSource(seed))
	case config.Minimax:
		return searcher.NewMinimax(searcher.WithDepth(c.Depth), searcher.WithNodeMetrics())
	case config.MCTS:
		return agent.NewEvaluationAgent(createMCTS(c, seed))
	default:
		panic(fmt.Sprintf("unknown strategy %q", c.Strategy))
	}
}

func createMCTS(c metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if c.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(c.Episodes))
	}
	if c.Duration > 0 {
		options = append(options, searcher.WithDuration(c.Duration))
	}
	if c.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(c.Cutoff))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(c.Goroutines, options...)
}
