package agent

import (
	"testing"

	"github.com/zeu5/tictactoe-rl/game"
)

func TestSARSAUsesSelectedNextMove(t *testing.T) {
	a := NewSARSA(Config{Alpha: 0.5, Gamma: 0.9, Epsilon: 0.2, Seed: 3})
	s := game.State{}
	next := game.State{game.X}
	a.Table().Set(next, 7, 0.6)
	a.Table().Set(next, 2, 5.0)
	a.Learn(s, 0, 0, next, 7, false)
	// target = 0 + 0.9 * Q(next, 7), not the larger Q(next, 2)
	if got := a.Table().Get(s, 0); !almostEqual(got, 0.27) {
		t.Errorf("expected 0.27, got %f", got)
	}
}

func TestSARSATerminalUpdateIgnoresNextMove(t *testing.T) {
	a := NewSARSA(Config{Alpha: 0.5, Gamma: 0.9, Epsilon: 0.2, Seed: 3})
	s := game.State{}
	next := game.State{game.X}
	a.Table().Set(next, 2, 5.0)
	a.Learn(s, 0, 0.5, next, game.NoMove, true)
	if got := a.Table().Get(s, 0); !almostEqual(got, 0.25) {
		t.Errorf("expected 0.25 after terminal update, got %f", got)
	}
}

func TestSARSANegativeRewardUpdate(t *testing.T) {
	a := NewSARSA(Config{Alpha: 0.1, Gamma: 0.9, Epsilon: 0.2, Seed: 3})
	s := game.State{}
	next := game.State{game.O}
	a.Learn(s, 3, -1.0, next, game.NoMove, true)
	if got := a.Table().Get(s, 3); !almostEqual(got, -0.1) {
		t.Errorf("expected -0.1 after a losing terminal update, got %f", got)
	}
}

func TestSARSAGreedySelection(t *testing.T) {
	a := NewSARSA(Config{Alpha: 0.1, Gamma: 0.9, Epsilon: 1.0, Seed: 3})
	s := game.State{}
	a.Table().Set(s, 5, 2.0)
	legal := s.LegalMoves()
	for i := 0; i < 100; i++ {
		if m := a.SelectMove(s, legal, false); m != 5 {
			t.Fatalf("expected greedy move 5 with explore off, got %d", m)
		}
	}
}
