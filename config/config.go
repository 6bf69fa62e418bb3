package config

import (
	"checkers/meta"
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Player kinds accepted for WHITE and BLACK.
const (
	Human   = "human"
	Random  = "random"
	Minimax = "minimax"
	MCTS    = "mcts"
)

type Config struct {
	Mode       string `mapstructure:"MODE"` // play, selfplay or experiment
	BoardSize  int    `mapstructure:"BOARD_SIZE"`
	Placement  string `mapstructure:"PLACEMENT"` // empty for the standard opening
	White      string `mapstructure:"WHITE"`
	Black      string `mapstructure:"BLACK"`
	Depth      int    `mapstructure:"DEPTH"`
	Episodes   int    `mapstructure:"EPISODES"`
	Goroutines int    `mapstructure:"GOROUTINES"`
	Cutoff     int    `mapstructure:"CUTOFF"`
	Seed       uint64 `mapstructure:"SEED"` // 0 seeds from the clock
	MaxTurns   int    `mapstructure:"MAX_TURNS"`
	Games      int    `mapstructure:"GAMES"` // per experiment match-up
	OutputDir  string `mapstructure:"OUTPUT_DIR"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
}

// Setup loads defaults, then the optional config file at cfgPath, then
// CHECKERS_* environment variables.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("MODE", "play")
	v.SetDefault("BOARD_SIZE", meta.BOARD_SIZE)
	v.SetDefault("PLACEMENT", "")
	v.SetDefault("WHITE", Human)
	v.SetDefault("BLACK", Minimax)
	v.SetDefault("DEPTH", meta.DEPTH)
	v.SetDefault("EPISODES", meta.EPISODES)
	v.SetDefault("GOROUTINES", meta.GO_ROUTINES)
	v.SetDefault("CUTOFF", meta.WITH_CUTOFF)
	v.SetDefault("SEED", 0)
	v.SetDefault("MAX_TURNS", meta.MAX_TURNS)
	v.SetDefault("GAMES", 10)
	v.SetDefault("OUTPUT_DIR", "experiments")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetEnvPrefix("CHECKERS")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.BoardSize < 4 {
		return fmt.Errorf("%w: board size %d is too small", ErrInvalidConfig, c.BoardSize)
	}
	switch c.Mode {
	case "play", "selfplay", "experiment":
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	for _, kind := range []string{c.White, c.Black} {
		switch kind {
		case Human, Random, Minimax, MCTS:
		default:
			return fmt.Errorf("%w: unknown player kind %q", ErrInvalidConfig, kind)
		}
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max turns must be positive", ErrInvalidConfig)
	}
	return nil
}
