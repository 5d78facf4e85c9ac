package train

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/zeu5/tictactoe-rl/agent"
	"github.com/zeu5/tictactoe-rl/match"
)

// Evaluator pits two agents against each other with learning and exploration
// both off.
type Evaluator struct {
	agentX agent.Agent
	agentO agent.Agent
	games  int

	log *zap.SugaredLogger
	out io.Writer
}

func NewEvaluator(agentX, agentO agent.Agent, games int, log *zap.SugaredLogger) *Evaluator {
	return &Evaluator{
		agentX: agentX,
		agentO: agentO,
		games:  games,
		log:    log,
		out:    io.Discard,
	}
}

// SetOutput points the progress line somewhere visible.
func (e *Evaluator) SetOutput(w io.Writer) {
	e.out = w
}

// Evaluate plays the configured number of games, reporting progress every
// tenth of the way.
func (e *Evaluator) Evaluate(ctx context.Context) (*Stats, error) {
	name := fmt.Sprintf("%s vs %s", e.agentX.Name(), e.agentO.Name())
	e.log.Debugw("evaluation started", "matchup", name, "games", e.games)

	m := match.New(e.agentX, e.agentO)
	stats := &Stats{}
	tick := e.games / 10

	for i := 1; i <= e.games; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		outcome, err := m.Play(ctx, false)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}
		stats.count(outcome)

		if tick > 0 && i%tick == 0 {
			fmt.Fprintf(e.out, "%s: game %d/%d\n", name, i, e.games)
		}
	}

	stats.Rates()
	e.log.Infow("evaluation finished",
		"matchup", name,
		"games", stats.TotalGames,
		"x_win_rate", stats.XWinRate,
		"o_win_rate", stats.OWinRate,
		"draw_rate", stats.DrawRate,
	)
	return stats, nil
}
