package agent

import (
	"math/rand"

	"github.com/zeu5/tictactoe-rl/game"
)

// Random plays uniformly among the legal moves.
type Random struct {
	rand *rand.Rand
}

var _ Agent = &Random{}

// NewRandom creates a random agent. Seed 0 seeds from the clock.
func NewRandom(seed int64) *Random {
	return &Random{
		rand: newRand(seed),
	}
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) Kind() LearnerKind {
	return LearnerNone
}

func (r *Random) SelectMove(_ game.State, legal []game.Move, _ bool) game.Move {
	return legal[r.rand.Intn(len(legal))]
}
