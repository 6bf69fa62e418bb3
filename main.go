package main

import (
	"bufio"
	"checkers/config"
	"checkers/engine"
	"checkers/experiments"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"
	"checkers/searcher"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a config file")
	mode := flag.String("mode", "", "play, selfplay or experiment")
	experiment := flag.String("experiment", "strategy", "strategy, parallelization, cutoff or throughput")
	flag.Parse()

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *mode != "" {
		cfg.Mode = *mode
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("invalid mode")
		}
	}
	setupLogger(cfg.LogLevel)

	switch cfg.Mode {
	case "play":
		err = play(cfg, os.Stdin, os.Stdout)
	case "selfplay":
		err = selfPlay(cfg, os.Stdout)
	case "experiment":
		err = runExperiment(cfg, *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Mode)
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func newState(cfg *config.Config) (*game.GameState, error) {
	board := game.NewStandardBoard(cfg.BoardSize)
	if cfg.Placement != "" {
		var err error
		board, err = game.Parse(cfg.BoardSize, cfg.Placement)
		if err != nil {
			return nil, err
		}
	}
	return game.NewGameState(board, game.White,
		game.NewPlayer(cfg.White, game.White), game.NewPlayer(cfg.Black, game.Black)), nil
}

// newStrategies returns a strategy for every side not played by a human.
func newStrategies(cfg *config.Config) map[game.Team]searcher.Strategy {
	strategies := map[game.Team]searcher.Strategy{}
	for i, side := range []struct {
		team game.Team
		kind string
	}{{game.White, cfg.White}, {game.Black, cfg.Black}} {
		if side.kind == config.Human {
			continue
		}
		seed := cfg.Seed
		if seed != 0 {
			seed += uint64(i)
		}
		strategies[side.team] = experiments.NewStrategy(metrics.AgentConfig{
			ID:         i + 1,
			Strategy:   side.kind,
			Depth:      cfg.Depth,
			Goroutines: cfg.Goroutines,
			Episodes:   cfg.Episodes,
			Cutoff:     cfg.Cutoff,
			Seed:       seed,
		})
	}
	return strategies
}

// play reads commands from in: "x y" clicks a cell, "u" undoes the last
// move of the human, "s" prints the snapshot and "q" quits.
func play(cfg *config.Config, in io.Reader, out io.Writer) error {
	state, err := newState(cfg)
	if err != nil {
		return err
	}
	controller := gamemaster.NewController(state, meta.UPDATE_BUFFER)
	strategies := newStrategies(cfg)
	scanner := bufio.NewScanner(in)

	for turns := 0; turns < cfg.MaxTurns; {
		drain(controller)
		state := controller.State()
		if state.Winner() != game.NoTeam {
			fmt.Fprint(out, game.Render(state.Board))
			fmt.Fprintf(out, "%s wins\n", state.Winner())
			return nil
		}

		if strategy, ok := strategies[state.Turn]; ok {
			strategy.Update(state)
			move := strategy.ChooseMove(state)
			if err := controller.Play(move); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s plays %v -> %v\n", state.Turn, move.From, move.To)
			turns++
			continue
		}

		fmt.Fprint(out, game.Render(state.Board))
		fmt.Fprintf(out, "%s> ", state.Turn)
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())

		switch {
		case len(fields) == 0:
		case fields[0] == "q":
			return nil
		case fields[0] == "s":
			fmt.Fprintln(out, state.Board.String())
		case fields[0] == "u":
			if err := undo(controller, strategies); err != nil {
				fmt.Fprintln(out, err)
			}
		case len(fields) == 2:
			x, errX := strconv.Atoi(fields[0])
			y, errY := strconv.Atoi(fields[1])
			if errX != nil || errY != nil {
				fmt.Fprintln(out, "expected: x y")
				continue
			}
			ev := controller.Click(game.Coord{X: x, Y: y})
			if ev.Kind == gamemaster.Committed {
				turns++
			}
		default:
			fmt.Fprintln(out, "commands: x y | u | s | q")
		}
	}

	log.Info().Msgf("stopped after %d turns without a winner", cfg.MaxTurns)
	return nil
}

// undo steps back until a human is to move again.
func undo(controller *gamemaster.Controller, strategies map[game.Team]searcher.Strategy) error {
	if err := controller.Undo(); err != nil {
		return err
	}
	for {
		if _, ok := strategies[controller.State().Turn]; !ok {
			return nil
		}
		if err := controller.Undo(); err != nil {
			return err
		}
	}
}

func drain(controller *gamemaster.Controller) {
	for {
		select {
		case update := <-controller.Updates():
			log.Debug().Msgf("%s event at %v", update.Event.Kind, update.Event.Cell)
		default:
			return
		}
	}
}

func selfPlay(cfg *config.Config, out io.Writer) error {
	strategies := newStrategies(cfg)
	if len(strategies) != 2 {
		return fmt.Errorf("%w: self-play needs two computer players", config.ErrInvalidConfig)
	}
	state, err := newState(cfg)
	if err != nil {
		return err
	}

	e := engine.LocalEngine(state, strategies[game.White], strategies[game.Black], cfg.MaxTurns)
	winner, gameMetric, _ := e.Run()

	fmt.Fprintf(out, "winner: %s after %d moves in %v\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}

func runExperiment(cfg *config.Config, name string) error {
	settings := experiments.Settings{
		Root:      cfg.OutputDir,
		Games:     cfg.Games,
		BoardSize: cfg.BoardSize,
		Placement: cfg.Placement,
		MaxTurns:  cfg.MaxTurns,
	}

	var err error
	switch name {
	case "strategy":
		_, err = experiments.RunStrategyExperiment(settings)
	case "parallelization":
		_, err = experiments.RunParallelizationExperiment(settings)
	case "cutoff":
		_, err = experiments.RunCutoffExperiment(settings)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(settings)
	default:
		err = fmt.Errorf("unknown experiment %q", name)
	}
	return err
}
