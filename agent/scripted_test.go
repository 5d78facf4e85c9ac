package agent

import (
	"testing"

	"github.com/zeu5/tictactoe-rl/game"
)

func TestScriptedPrefersWinOverBlock(t *testing.T) {
	a := NewScripted(1)
	// X can win at 2, O threatens at 5. Completing the X line comes first.
	s := game.State{game.X, game.X, game.Empty, game.O, game.O, game.Empty}
	if m := a.SelectMove(s, s.LegalMoves(), false); m != 2 {
		t.Errorf("expected winning move 2, got %d", m)
	}
}

func TestScriptedBlocks(t *testing.T) {
	a := NewScripted(1)
	// No X line to complete, O threatens at 5.
	s := game.State{game.X, game.Empty, game.Empty, game.O, game.O, game.Empty}
	if m := a.SelectMove(s, s.LegalMoves(), false); m != 5 {
		t.Errorf("expected blocking move 5, got %d", m)
	}
}

func TestScriptedTakesCenter(t *testing.T) {
	a := NewScripted(1)
	s := game.State{game.X, game.Empty, game.Empty, game.Empty, game.Empty, game.Empty, game.Empty, game.Empty, game.O}
	if m := a.SelectMove(s, s.LegalMoves(), false); m != 4 {
		t.Errorf("expected center move 4, got %d", m)
	}
}

func TestScriptedFallsBackToRandomLegal(t *testing.T) {
	a := NewScripted(1)
	// Center occupied, no line close to completion.
	s := game.State{game.Empty, game.Empty, game.Empty, game.Empty, game.X, game.Empty, game.Empty, game.Empty, game.O}
	legal := s.LegalMoves()
	for i := 0; i < 50; i++ {
		m := a.SelectMove(s, legal, false)
		if s[m] != game.Empty {
			t.Fatalf("scripted fallback picked occupied cell %d", m)
		}
	}
}
