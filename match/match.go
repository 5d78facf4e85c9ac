package match

import (
	"context"
	"fmt"

	"github.com/zeu5/tictactoe-rl/agent"
	"github.com/zeu5/tictactoe-rl/game"
)

// Terminal payouts. A draw pays both sides, a win pays the winner and charges
// the loser.
const (
	WinReward  = 1.0
	LossReward = -1.0
	DrawReward = 0.5
)

// Rewards returns the terminal payout pair for X and O. Ongoing states pay
// nothing.
func Rewards(outcome game.Outcome) (x, o float64) {
	switch outcome {
	case game.XWins:
		return WinReward, LossReward
	case game.OWins:
		return LossReward, WinReward
	case game.Draw:
		return DrawReward, DrawReward
	}
	return 0, 0
}

// Match drives games between two agents on a shared board, X moving first.
// The same Match can play any number of episodes, learning agents keep their
// tables across them.
type Match struct {
	agentX agent.Agent
	agentO agent.Agent
	board  *game.Board
}

func New(agentX, agentO agent.Agent) *Match {
	return &Match{
		agentX: agentX,
		agentO: agentO,
		board:  game.NewBoard(),
	}
}

// State returns the current board, the final position once Play has returned.
func (m *Match) State() game.State {
	return m.board.State()
}

// Play runs one episode to completion and reports the outcome. With train set
// the mover's learning update runs synchronously after every move and agents
// select moves with exploration on. An illegal move from an agent aborts the
// episode, the driver guarantees agents only ever see legal choices so this
// is a bug, not a recoverable condition.
func (m *Match) Play(ctx context.Context, train bool) (game.Outcome, error) {
	m.board.Reset()

	for {
		select {
		case <-ctx.Done():
			return game.Ongoing, ctx.Err()
		default:
		}

		mover := m.board.Turn()
		actor := m.agentFor(mover)
		state := m.board.State()

		move := actor.SelectMove(state, state.LegalMoves(), train)
		next, err := m.board.Apply(move)
		if err != nil {
			return game.Ongoing, fmt.Errorf("agent %s: %w", actor.Name(), err)
		}

		outcome := next.Terminal()
		terminal := outcome != game.Ongoing

		if train {
			m.learn(actor, mover, state, move, next, outcome, terminal)
		}
		if terminal {
			return outcome, nil
		}
	}
}

func (m *Match) agentFor(p game.Player) agent.Agent {
	if p == game.X {
		return m.agentX
	}
	return m.agentO
}

// learn delivers the transition to the mover. Only the mover is updated: the
// opponent's loss is never fed back to it. On-policy learners get a next move
// pre-selected with exploration on; that move is bookkeeping for the target
// and is not replayed when the turn actually comes around.
func (m *Match) learn(actor agent.Agent, mover game.Player, state game.State, move game.Move, next game.State, outcome game.Outcome, terminal bool) {
	rx, ro := Rewards(outcome)
	reward := rx
	if mover == game.O {
		reward = ro
	}

	switch actor.Kind() {
	case agent.LearnerOffPolicy:
		actor.(agent.OffPolicyLearner).Learn(state, move, reward, next, terminal)
	case agent.LearnerOnPolicy:
		nextMove := game.NoMove
		if !terminal {
			nextMove = actor.SelectMove(next, next.LegalMoves(), true)
		}
		actor.(agent.OnPolicyLearner).Learn(state, move, reward, next, nextMove, terminal)
	}
}
