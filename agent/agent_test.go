package agent

import (
	"testing"

	"github.com/zeu5/tictactoe-rl/game"
)

func TestNewKnowsEveryRegisteredName(t *testing.T) {
	for _, name := range Names() {
		a, err := New(name, DefaultConfig())
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if a.Name() != name {
			t.Errorf("expected name %q, got %q", name, a.Name())
		}
	}
}

func TestNewRejectsUnknownName(t *testing.T) {
	if _, err := New("minimax", DefaultConfig()); err == nil {
		t.Errorf("expected an error for an unknown agent name")
	}
}

func TestLearnerKinds(t *testing.T) {
	cases := map[string]LearnerKind{
		"random":    LearnerNone,
		"scripted":  LearnerNone,
		"qlearning": LearnerOffPolicy,
		"boltzmann": LearnerOffPolicy,
		"sarsa":     LearnerOnPolicy,
	}
	for name, kind := range cases {
		a, err := New(name, DefaultConfig())
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if a.Kind() != kind {
			t.Errorf("%s: expected kind %d, got %d", name, kind, a.Kind())
		}
		switch a.Kind() {
		case LearnerOffPolicy:
			if _, ok := a.(OffPolicyLearner); !ok {
				t.Errorf("%s: tagged off-policy but does not implement OffPolicyLearner", name)
			}
		case LearnerOnPolicy:
			if _, ok := a.(OnPolicyLearner); !ok {
				t.Errorf("%s: tagged on-policy but does not implement OnPolicyLearner", name)
			}
		}
	}
}

func TestRandomPlaysLegal(t *testing.T) {
	r := NewRandom(5)
	s := game.State{game.X, game.O, game.X}
	legal := s.LegalMoves()
	for i := 0; i < 100; i++ {
		m := r.SelectMove(s, legal, false)
		if s[m] != game.Empty {
			t.Fatalf("random picked occupied cell %d", m)
		}
	}
}

func TestRandomSeededIsDeterministic(t *testing.T) {
	s := game.State{}
	legal := s.LegalMoves()

	a := NewRandom(42)
	b := NewRandom(42)
	for i := 0; i < 50; i++ {
		if ma, mb := a.SelectMove(s, legal, false), b.SelectMove(s, legal, false); ma != mb {
			t.Fatalf("same seed diverged at draw %d: %d vs %d", i, ma, mb)
		}
	}
}
