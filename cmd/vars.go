package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zeu5/tictactoe-rl/agent"
	"github.com/zeu5/tictactoe-rl/config"
)

var (
	cfg *config.Config = config.Default()

	cfgFile  string
	savePath string
	debug    bool

	episodes           int
	checkpointInterval int
	games              int
	parallelism        int

	alpha       float64
	gamma       float64
	epsilon     float64
	temperature float64
	seed        int64
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a config file, flags override its values")
	cmd.PersistentFlags().StringVar(&savePath, "save-path", cfg.SavePath, "Directory for run artifacts")
	cmd.PersistentFlags().BoolVar(&debug, "debug", cfg.Debug, "Enable debug logging")

	cmd.PersistentFlags().IntVar(&episodes, "episodes", cfg.Episodes, "Number of training episodes per matchup")
	cmd.PersistentFlags().IntVar(&checkpointInterval, "checkpoint-interval", cfg.CheckpointInterval, "Episodes between history checkpoints")
	cmd.PersistentFlags().IntVar(&games, "games", cfg.Games, "Number of evaluation games")
	cmd.PersistentFlags().IntVar(&parallelism, "parallelism", cfg.Parallelism, "Number of matchups trained in parallel")

	cmd.PersistentFlags().Float64Var(&alpha, "alpha", cfg.Alpha, "Learning rate")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", cfg.Gamma, "Discount factor")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", cfg.Epsilon, "Exploration rate during training")
	cmd.PersistentFlags().Float64Var(&temperature, "temperature", cfg.Temperature, "Softmax temperature for the boltzmann agent")
	cmd.PersistentFlags().Int64Var(&seed, "seed", cfg.Seed, "Random seed, 0 seeds from the clock")
}

// UpdateFlags merges the optional config file into cfg and then applies every
// flag the user set explicitly, so flags always win over the file.
func UpdateFlags(cmd *cobra.Command) error {
	if cfgFile != "" {
		if err := config.LoadFile(cfgFile, cfg); err != nil {
			return err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("save-path") {
		cfg.SavePath = savePath
	}
	if fs.Changed("debug") {
		cfg.Debug = debug
	}
	if fs.Changed("episodes") {
		cfg.Episodes = episodes
	}
	if fs.Changed("checkpoint-interval") {
		cfg.CheckpointInterval = checkpointInterval
	}
	if fs.Changed("games") {
		cfg.Games = games
	}
	if fs.Changed("parallelism") {
		cfg.Parallelism = parallelism
	}
	if fs.Changed("alpha") {
		cfg.Alpha = alpha
	}
	if fs.Changed("gamma") {
		cfg.Gamma = gamma
	}
	if fs.Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if fs.Changed("temperature") {
		cfg.Temperature = temperature
	}
	if fs.Changed("seed") {
		cfg.Seed = seed
	}

	return cfg.Validate()
}

func agentConfig() agent.Config {
	return agent.Config{
		Alpha:       cfg.Alpha,
		Gamma:       cfg.Gamma,
		Epsilon:     cfg.Epsilon,
		Temperature: cfg.Temperature,
		Seed:        cfg.Seed,
	}
}
