package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

type localEngine struct {
	controller *gamemaster.Controller
	agents     map[game.Team]searcher.Strategy
	maxTurns   int
}

// LocalEngine pits two strategies against each other from state.
func LocalEngine(state *game.GameState, white, black searcher.Strategy, maxTurns int) Engine {
	if white == nil || black == nil {
		panic("need a strategy for each side")
	}
	if maxTurns <= 0 {
		panic("max turns must be positive")
	}
	return &localEngine{
		controller: gamemaster.NewController(state, 0),
		agents:     map[game.Team]searcher.Strategy{game.White: white, game.Black: black},
		maxTurns:   maxTurns,
	}
}

// Run executes the entire game loop until a winner is found.
func (e *localEngine) Run() (game.Team, metrics.GameMetric, []metrics.MoveMetric) {
	state := e.controller.State()
	gameMetric := metrics.GameMetric{
		StartingPlayer: state.Turn,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", state.Turn)

	turn := 1
	for ; state.Winner() == game.NoTeam && turn <= e.maxTurns; turn++ {
		agent := e.agents[state.Turn]
		agent.Update(state)
		move := agent.ChooseMove(state)

		if err := e.controller.Play(move); err != nil {
			fallback := state.LegalMoves()[0].Move()
			log.Warn().Err(err).Msgf("%s chose an illegal move, playing %v instead", state.Turn, fallback)
			move = fallback
			if err := e.controller.Play(move); err != nil {
				panic(err)
			}
		}

		moveMetric := metrics.MoveMetric{Step: turn, Player: state.Turn, Move: move}
		if reporter, ok := agent.(searcher.Reporter); ok {
			moveMetric.SearchMetric = reporter.Metric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().Msgf("turn %d: %s played %v -> %v", turn, state.Turn, move.From, move.To)
		state = e.controller.State()
	}

	gameMetric.Winner = state.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if gameMetric.Winner != game.NoTeam {
		log.Info().Msgf("game ended after %d moves, %s wins", gameMetric.TotalMoves, gameMetric.Winner)
	} else {
		log.Info().Msgf("stopped after %d turns without a winner", e.maxTurns)
	}

	return gameMetric.Winner, gameMetric, moveMetrics
}
