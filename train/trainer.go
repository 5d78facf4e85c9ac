package train

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/zeu5/tictactoe-rl/agent"
	"github.com/zeu5/tictactoe-rl/game"
	"github.com/zeu5/tictactoe-rl/match"
)

// Stats aggregates the outcomes of a batch of games. Rates are percentages.
type Stats struct {
	TotalGames int     `json:"total_games"`
	XWins      int     `json:"x_wins"`
	OWins      int     `json:"o_wins"`
	Draws      int     `json:"draws"`
	XWinRate   float64 `json:"x_win_rate"`
	OWinRate   float64 `json:"o_win_rate"`
	DrawRate   float64 `json:"draw_rate"`
}

func (s *Stats) count(outcome game.Outcome) {
	s.TotalGames++
	switch outcome {
	case game.XWins:
		s.XWins++
	case game.OWins:
		s.OWins++
	case game.Draw:
		s.Draws++
	}
}

// Rates fills in the percentage fields. With no games played they stay 0.
func (s *Stats) Rates() {
	if s.TotalGames == 0 {
		return
	}
	total := float64(s.TotalGames)
	s.XWinRate = 100 * float64(s.XWins) / total
	s.OWinRate = 100 * float64(s.OWins) / total
	s.DrawRate = 100 * float64(s.Draws) / total
}

// Checkpoint samples the training history: rates cover only the episodes
// since the previous checkpoint, so the curve shows learning progress rather
// than a running average.
type Checkpoint struct {
	Episode  int     `json:"episode"`
	XWinRate float64 `json:"x_win_rate"`
	OWinRate float64 `json:"o_win_rate"`
	DrawRate float64 `json:"draw_rate"`
}

// History is the checkpoint sequence of one training run.
type History struct {
	Checkpoints []Checkpoint `json:"checkpoints"`
}

// Trainer runs training episodes for one pairing and tracks outcome totals
// plus the windowed checkpoint history. Episodes are strictly sequential, the
// learner's table after episode n is its starting point for episode n+1.
type Trainer struct {
	agentX agent.Agent
	agentO agent.Agent

	episodes           int
	checkpointInterval int

	log *zap.SugaredLogger
	out io.Writer
}

func NewTrainer(agentX, agentO agent.Agent, episodes, checkpointInterval int, log *zap.SugaredLogger) *Trainer {
	return &Trainer{
		agentX:             agentX,
		agentO:             agentO,
		episodes:           episodes,
		checkpointInterval: checkpointInterval,
		log:                log,
		out:                io.Discard,
	}
}

// SetOutput points the live progress line somewhere visible.
func (t *Trainer) SetOutput(w io.Writer) {
	t.out = w
}

// Train plays the configured number of episodes with learning enabled.
func (t *Trainer) Train(ctx context.Context) (*Stats, *History, error) {
	name := fmt.Sprintf("%s vs %s", t.agentX.Name(), t.agentO.Name())
	t.log.Debugw("training started", "matchup", name, "episodes", t.episodes)

	m := match.New(t.agentX, t.agentO)
	stats := &Stats{}
	window := &Stats{}
	history := &History{
		Checkpoints: make([]Checkpoint, 0, t.episodes/t.checkpointInterval),
	}

	for episode := 1; episode <= t.episodes; episode++ {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		outcome, err := m.Play(ctx, true)
		if err != nil {
			return nil, nil, fmt.Errorf("episode %d: %w", episode, err)
		}
		stats.count(outcome)
		window.count(outcome)

		if episode%t.checkpointInterval == 0 {
			window.Rates()
			cp := Checkpoint{
				Episode:  episode,
				XWinRate: window.XWinRate,
				OWinRate: window.OWinRate,
				DrawRate: window.DrawRate,
			}
			history.Checkpoints = append(history.Checkpoints, cp)
			window = &Stats{}
			fmt.Fprintf(t.out, "%s: episode %d/%d, X %.1f%%, O %.1f%%, draws %.1f%%\n",
				name, episode, t.episodes, cp.XWinRate, cp.OWinRate, cp.DrawRate)
		}
	}

	stats.Rates()
	fmt.Fprintf(t.out, "%s: done, %d episodes, X %.1f%%, O %.1f%%, draws %.1f%%\n",
		name, stats.TotalGames, stats.XWinRate, stats.OWinRate, stats.DrawRate)
	t.log.Infow("training finished",
		"matchup", name,
		"episodes", stats.TotalGames,
		"x_win_rate", stats.XWinRate,
		"o_win_rate", stats.OWinRate,
		"draw_rate", stats.DrawRate,
	)
	return stats, history, nil
}
