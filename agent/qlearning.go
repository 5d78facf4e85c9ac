package agent

import (
	"math/rand"

	"github.com/zeu5/tictactoe-rl/game"
)

// QLearning keeps a tabular action-value estimate updated off-policy: the
// learning target bootstraps off the greedy value of the next state, not off
// the move that is eventually played there.
type QLearning struct {
	table *QTable
	cfg   Config
	rand  *rand.Rand
}

var _ OffPolicyLearner = &QLearning{}

func NewQLearning(cfg Config) *QLearning {
	rng := newRand(cfg.Seed)
	return &QLearning{
		table: NewQTable(rng),
		cfg:   cfg,
		rand:  rng,
	}
}

func (q *QLearning) Name() string {
	return "qlearning"
}

func (q *QLearning) Kind() LearnerKind {
	return LearnerOffPolicy
}

// Table exposes the value table for inspection and reporting.
func (q *QLearning) Table() *QTable {
	return q.table
}

// SelectMove is epsilon-greedy. With explore set it plays a uniform random
// move with probability epsilon, otherwise the table argmax with its uniform
// tie-break.
func (q *QLearning) SelectMove(s game.State, legal []game.Move, explore bool) game.Move {
	if explore && q.rand.Float64() < q.cfg.Epsilon {
		return legal[q.rand.Intn(len(legal))]
	}
	m, _ := q.table.MaxAmong(s, legal)
	return m
}

// Learn applies one off-policy update. Terminal transitions use the bare
// reward as target. Non-terminal targets bootstrap over all nine cell indices
// of the next state, occupied cells included, with unseen pairs counting as 0.
func (q *QLearning) Learn(s game.State, m game.Move, reward float64, next game.State, terminal bool) {
	target := reward
	if !terminal {
		target = reward + q.cfg.Gamma*q.table.MaxAll(next)
	}
	cur := q.table.Get(s, m)
	q.table.Set(s, m, cur+q.cfg.Alpha*(target-cur))
}
