package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zeu5/tictactoe-rl/agent"
	"github.com/zeu5/tictactoe-rl/report"
	"github.com/zeu5/tictactoe-rl/train"
)

func TrainCommand() *cobra.Command {
	var (
		learnerName  string
		opponentName string
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train one learner against one opponent",
		RunE: func(cmd *cobra.Command, args []string) error {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)

			doneCh := make(chan struct{})

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				select {
				case <-sigCh:
				case <-doneCh:
				}
				cancel()
			}()
			defer close(doneCh)

			log := NewLogger()
			defer log.Sync()

			runDir := filepath.Join(cfg.SavePath, uuid.New().String())
			if err := cfg.Record(runDir); err != nil {
				return err
			}

			matchup := train.Matchup{Learner: learnerName, Opponent: opponentName}
			suite := train.NewSuite([]train.Matchup{matchup}, train.SuiteConfig{
				Episodes:           cfg.Episodes,
				CheckpointInterval: cfg.CheckpointInterval,
				Parallelism:        1,
				Progress:           true,
				Agent:              agentConfig(),
			}, log)
			results, err := suite.Run(ctx)
			if err != nil {
				return err
			}

			report.WriteComparison(os.Stdout, results)
			if err := report.SaveHistories(runDir, results); err != nil {
				return err
			}
			chartPath, err := report.RenderChart(runDir, results)
			if err != nil {
				return err
			}
			log.Infow("training finished", "run_dir", runDir, "chart", chartPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&learnerName, "agent", "qlearning", fmt.Sprintf("Learning agent to train (%s)", strings.Join(agent.Names(), ", ")))
	cmd.Flags().StringVar(&opponentName, "opponent", "random", "Opponent to train against")

	return cmd
}
