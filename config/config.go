package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/zeu5/tictactoe-rl/util"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the effective run configuration once defaults, the optional
// config file and explicit flags are merged.
type Config struct {
	SavePath string `mapstructure:"save_path" json:"save_path"`
	Debug    bool   `mapstructure:"debug" json:"debug"`

	// Training
	Episodes           int `mapstructure:"episodes" json:"episodes"`
	CheckpointInterval int `mapstructure:"checkpoint_interval" json:"checkpoint_interval"`
	Games              int `mapstructure:"games" json:"games"`
	Parallelism        int `mapstructure:"parallelism" json:"parallelism"`

	// Agent hyperparameters
	Alpha       float64 `mapstructure:"alpha" json:"alpha"`
	Gamma       float64 `mapstructure:"gamma" json:"gamma"`
	Epsilon     float64 `mapstructure:"epsilon" json:"epsilon"`
	Temperature float64 `mapstructure:"temperature" json:"temperature"`
	Seed        int64   `mapstructure:"seed" json:"seed"`
}

// Default returns the standard configuration: 10000 episodes per matchup,
// checkpoints every 1000, and the usual hyperparameters.
func Default() *Config {
	return &Config{
		SavePath:           "results",
		Episodes:           10000,
		CheckpointInterval: 1000,
		Games:              1000,
		Parallelism:        4,
		Alpha:              0.1,
		Gamma:              0.9,
		Epsilon:            0.2,
		Temperature:        1.0,
	}
}

// Validate rejects degenerate parameters before any episode runs.
func (c *Config) Validate() error {
	if c.Episodes <= 0 {
		return fmt.Errorf("%w: episodes must be positive, got %d", ErrInvalidConfig, c.Episodes)
	}
	if c.CheckpointInterval <= 0 || c.CheckpointInterval > c.Episodes {
		return fmt.Errorf("%w: checkpoint interval must be between 1 and episodes, got %d", ErrInvalidConfig, c.CheckpointInterval)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be at least 1, got %d", ErrInvalidConfig, c.Parallelism)
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("%w: alpha must be in (0, 1], got %f", ErrInvalidConfig, c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("%w: gamma must be in [0, 1], got %f", ErrInvalidConfig, c.Gamma)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("%w: epsilon must be in [0, 1], got %f", ErrInvalidConfig, c.Epsilon)
	}
	if c.Temperature <= 0 {
		return fmt.Errorf("%w: temperature must be positive, got %f", ErrInvalidConfig, c.Temperature)
	}
	return nil
}

// Record saves the effective configuration next to the run artifacts.
func (c *Config) Record(dir string) error {
	return util.SaveJson(filepath.Join(dir, "config.json"), c)
}
