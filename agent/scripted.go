package agent

import (
	"math/rand"

	"github.com/zeu5/tictactoe-rl/game"
)

// Scripted plays a fixed priority ladder: complete a line of X marks, then
// complete a line of O marks, then take the center, otherwise play a random
// legal move. The ladder always checks X before O whichever seat the agent
// holds, so as O its "win" rule blocks and its "block" rule wins.
type Scripted struct {
	rand *rand.Rand
}

var _ Agent = &Scripted{}

// NewScripted creates a scripted agent. Seed 0 seeds from the clock.
func NewScripted(seed int64) *Scripted {
	return &Scripted{
		rand: newRand(seed),
	}
}

func (a *Scripted) Name() string {
	return "scripted"
}

func (a *Scripted) Kind() LearnerKind {
	return LearnerNone
}

func (a *Scripted) SelectMove(s game.State, legal []game.Move, _ bool) game.Move {
	if m, ok := s.CompletingMove(game.X); ok {
		return m
	}
	if m, ok := s.CompletingMove(game.O); ok {
		return m
	}
	const center = game.Move(4)
	if s[center] == game.Empty {
		return center
	}
	return legal[a.rand.Intn(len(legal))]
}
