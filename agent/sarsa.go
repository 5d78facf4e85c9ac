package agent

import (
	"math/rand"

	"github.com/zeu5/tictactoe-rl/game"
)

// SARSA keeps a tabular action-value estimate updated on-policy: the learning
// target bootstraps off the value of the move the driver selected for the
// next state.
type SARSA struct {
	table *QTable
	cfg   Config
	rand  *rand.Rand
}

var _ OnPolicyLearner = &SARSA{}

func NewSARSA(cfg Config) *SARSA {
	rng := newRand(cfg.Seed)
	return &SARSA{
		table: NewQTable(rng),
		cfg:   cfg,
		rand:  rng,
	}
}

func (a *SARSA) Name() string {
	return "sarsa"
}

func (a *SARSA) Kind() LearnerKind {
	return LearnerOnPolicy
}

// Table exposes the value table for inspection and reporting.
func (a *SARSA) Table() *QTable {
	return a.table
}

// SelectMove is epsilon-greedy. With explore set it plays a uniform random
// move with probability epsilon, otherwise the table argmax with its uniform
// tie-break.
func (a *SARSA) SelectMove(s game.State, legal []game.Move, explore bool) game.Move {
	if explore && a.rand.Float64() < a.cfg.Epsilon {
		return legal[a.rand.Intn(len(legal))]
	}
	m, _ := a.table.MaxAmong(s, legal)
	return m
}

// Learn applies one on-policy update. Terminal transitions use the bare
// reward as target and ignore nextMove.
func (a *SARSA) Learn(s game.State, m game.Move, reward float64, next game.State, nextMove game.Move, terminal bool) {
	target := reward
	if !terminal {
		target = reward + a.cfg.Gamma*a.table.Get(next, nextMove)
	}
	cur := a.table.Get(s, m)
	a.table.Set(s, m, cur+a.cfg.Alpha*(target-cur))
}
