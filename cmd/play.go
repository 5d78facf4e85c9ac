package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zeu5/tictactoe-rl/agent"
	"github.com/zeu5/tictactoe-rl/game"
	"github.com/zeu5/tictactoe-rl/match"
)

func PlayCommand() *cobra.Command {
	var (
		agentName    string
		opponentName string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Train an agent and play one game against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			log := NewLogger()
			defer log.Sync()

			trained, err := trainedAgent(ctx, agentName, opponentName, log)
			if err != nil {
				return err
			}

			fmt.Printf("\nYou are O, %s is X. Board positions:\n\n", trained.Name())
			fmt.Println(game.Legend())

			human := agent.NewHuman(os.Stdin, os.Stdout)
			m := match.New(trained, human)
			outcome, err := m.Play(ctx, false)
			if err != nil {
				return err
			}

			fmt.Println(game.Render(m.State()))
			switch outcome {
			case game.XWins:
				fmt.Printf("%s wins!\n", trained.Name())
			case game.OWins:
				fmt.Println("You win! Congratulations!")
			default:
				fmt.Println("It is a draw!")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&agentName, "agent", "qlearning", "Agent to play against, learners are trained first")
	cmd.Flags().StringVar(&opponentName, "opponent", "random", "Opponent used to train the agent before the game")

	return cmd
}
