package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zeu5/tictactoe-rl/agent"
	"github.com/zeu5/tictactoe-rl/train"
)

func EvalCommand() *cobra.Command {
	var (
		agentXName   string
		agentOName   string
		opponentName string
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Pit two agents against each other without learning",
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

			agentX, err := trainedAgent(ctx, agentXName, opponentName, log)
			if err != nil {
				return err
			}
			agentO, err := trainedAgent(ctx, agentOName, opponentName, log)
			if err != nil {
				return err
			}

			evaluator := train.NewEvaluator(agentX, agentO, cfg.Games, log)
			evaluator.SetOutput(os.Stdout)
			stats, err := evaluator.Evaluate(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s (X): %d wins (%.2f%%)\n", agentXName, stats.XWins, stats.XWinRate)
			fmt.Printf("%s (O): %d wins (%.2f%%)\n", agentOName, stats.OWins, stats.OWinRate)
			fmt.Printf("draws: %d (%.2f%%)\n", stats.Draws, stats.DrawRate)
			switch {
			case stats.XWins > stats.OWins:
				fmt.Printf("winner: %s\n", aurora.Green(agentXName+" (X)"))
			case stats.OWins > stats.XWins:
				fmt.Printf("winner: %s\n", aurora.Green(agentOName+" (O)"))
			default:
				fmt.Println("winner: none, it is a tie")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&agentXName, "agent-x", "qlearning", "Agent playing X, learners are trained first")
	cmd.Flags().StringVar(&agentOName, "agent-o", "random", "Agent playing O, learners are trained first")
	cmd.Flags().StringVar(&opponentName, "opponent", "random", "Opponent used to train learning agents before evaluation")

	return cmd
}

// trainedAgent builds the named agent ready for evaluation. Non-learners are
// returned as constructed, learners are trained as X against the opponent for
// the configured number of episodes.
func trainedAgent(ctx context.Context, name, opponent string, log *zap.SugaredLogger) (agent.Agent, error) {
	a, err := agent.New(name, agentConfig())
	if err != nil {
		return nil, err
	}
	if a.Kind() == agent.LearnerNone {
		return a, nil
	}

	matchup := train.Matchup{Learner: name, Opponent: opponent}
	suite := train.NewSuite([]train.Matchup{matchup}, train.SuiteConfig{
		Episodes:           cfg.Episodes,
		CheckpointInterval: cfg.CheckpointInterval,
		Parallelism:        1,
		Progress:           true,
		Agent:              agentConfig(),
	}, log)
	results, err := suite.Run(ctx)
	if err != nil {
		return nil, err
	}
	return results[matchup.Name()].Learner, nil
}
