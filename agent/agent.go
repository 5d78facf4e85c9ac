package agent

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zeu5/tictactoe-rl/game"
)

// LearnerKind tags how an agent consumes transitions. The match driver
// switches on the tag to pick the right update call instead of probing
// concrete types.
type LearnerKind int

const (
	// LearnerNone marks agents that never learn.
	LearnerNone LearnerKind = iota
	// LearnerOffPolicy marks agents updated with the greedy next-state value.
	LearnerOffPolicy
	// LearnerOnPolicy marks agents updated with the value of the move
	// selected for the next state.
	LearnerOnPolicy
)

// Agent picks moves. Agents tagged LearnerOffPolicy implement
// OffPolicyLearner, agents tagged LearnerOnPolicy implement OnPolicyLearner.
type Agent interface {
	Name() string
	Kind() LearnerKind
	// SelectMove returns one of legal. With explore set the agent may
	// deviate from its greedy choice.
	SelectMove(s game.State, legal []game.Move, explore bool) game.Move
}

// OffPolicyLearner consumes a transition and bootstraps off the best table
// value of the next state.
type OffPolicyLearner interface {
	Agent
	Learn(s game.State, m game.Move, reward float64, next game.State, terminal bool)
}

// OnPolicyLearner consumes a transition and bootstraps off the move the
// driver selected for the next state. nextMove is game.NoMove when terminal
// is set.
type OnPolicyLearner interface {
	Agent
	Learn(s game.State, m game.Move, reward float64, next game.State, nextMove game.Move, terminal bool)
}

// Config carries the hyperparameters shared by the learning agents.
type Config struct {
	Alpha       float64
	Gamma       float64
	Epsilon     float64
	Temperature float64
	Seed        int64
}

// DefaultConfig returns the standard training hyperparameters.
func DefaultConfig() Config {
	return Config{
		Alpha:       0.1,
		Gamma:       0.9,
		Epsilon:     0.2,
		Temperature: 1.0,
	}
}

// New constructs an agent by name. Interactive agents are not part of the
// registry, they need their own I/O wiring.
func New(name string, cfg Config) (Agent, error) {
	switch name {
	case "random":
		return NewRandom(cfg.Seed), nil
	case "scripted":
		return NewScripted(cfg.Seed), nil
	case "qlearning":
		return NewQLearning(cfg), nil
	case "sarsa":
		return NewSARSA(cfg), nil
	case "boltzmann":
		return NewBoltzmann(cfg), nil
	}
	return nil, fmt.Errorf("unknown agent %q", name)
}

// Names lists the agents New accepts.
func Names() []string {
	return []string{"random", "scripted", "qlearning", "sarsa", "boltzmann"}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
