package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zeu5/tictactoe-rl/report"
	"github.com/zeu5/tictactoe-rl/train"
)

func SuiteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Train every learner against every opponent and compare them",
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
			log.Infow("suite starting", "run_dir", runDir, "episodes", cfg.Episodes, "parallelism", cfg.Parallelism)

			suite := train.NewSuite(train.StandardMatchups(), train.SuiteConfig{
				Episodes:           cfg.Episodes,
				CheckpointInterval: cfg.CheckpointInterval,
				Parallelism:        cfg.Parallelism,
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
			if err := report.SaveComparison(runDir, results); err != nil {
				return err
			}
			chartPath, err := report.RenderChart(runDir, results)
			if err != nil {
				return err
			}
			log.Infow("suite finished", "run_dir", runDir, "chart", chartPath)
			return nil
		},
	}

	return cmd
}
