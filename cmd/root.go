package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tictactoe-rl",
		Short: "Train and play tabular reinforcement learning agents on tic-tac-toe",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return UpdateFlags(cmd)
		},
		SilenceUsage: true,
	}
	AddFlags(cmd)

	cmd.AddCommand(
		SuiteCommand(),
		TrainCommand(),
		EvalCommand(),
		PlayCommand(),
	)

	return cmd
}

// NewLogger builds the process logger from the effective config. Call it
// after flags are merged.
func NewLogger() *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}
