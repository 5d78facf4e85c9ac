package agent

import (
	"math/rand"
	"testing"

	"github.com/zeu5/tictactoe-rl/game"
)

func TestQTableDefaultsToZero(t *testing.T) {
	q := NewQTable(rand.New(rand.NewSource(1)))
	s := game.State{}
	if v := q.Get(s, 4); v != 0 {
		t.Errorf("expected 0 for unseen pair, got %f", v)
	}
	if q.Len() != 1 {
		t.Errorf("expected the read to insert one entry, got %d", q.Len())
	}
	if q.States() != 1 {
		t.Errorf("expected one state, got %d", q.States())
	}
}

func TestQTableSetGet(t *testing.T) {
	q := NewQTable(rand.New(rand.NewSource(1)))
	s := game.State{game.X}
	q.Set(s, 3, 0.75)
	if v := q.Get(s, 3); v != 0.75 {
		t.Errorf("expected 0.75, got %f", v)
	}
}

func TestMaxAmongPicksUniqueMax(t *testing.T) {
	q := NewQTable(rand.New(rand.NewSource(1)))
	s := game.State{}
	q.Set(s, 2, 1.0)
	q.Set(s, 5, 0.5)
	for i := 0; i < 100; i++ {
		m, v := q.MaxAmong(s, []game.Move{2, 5, 7})
		if m != 2 {
			t.Fatalf("expected move 2, got %d", m)
		}
		if v != 1.0 {
			t.Fatalf("expected value 1.0, got %f", v)
		}
	}
}

func TestMaxAmongTieBreaksUniformly(t *testing.T) {
	q := NewQTable(rand.New(rand.NewSource(7)))
	s := game.State{}
	q.Set(s, 0, 1.0)
	q.Set(s, 4, 1.0)
	q.Set(s, 8, 1.0)
	q.Set(s, 1, 0.5)

	counts := make(map[game.Move]int)
	for i := 0; i < 9000; i++ {
		m, _ := q.MaxAmong(s, []game.Move{0, 1, 4, 8})
		counts[m]++
	}
	if counts[1] != 0 {
		t.Errorf("move below the max was picked %d times", counts[1])
	}
	for _, m := range []game.Move{0, 4, 8} {
		if counts[m] < 2700 || counts[m] > 3300 {
			t.Errorf("tied move %d picked %d times out of 9000, expected roughly a third", m, counts[m])
		}
	}
}

func TestMaxAmongNoMoves(t *testing.T) {
	q := NewQTable(rand.New(rand.NewSource(1)))
	m, v := q.MaxAmong(game.State{}, nil)
	if m != game.NoMove || v != 0 {
		t.Errorf("expected NoMove and 0, got %d and %f", m, v)
	}
}

func TestMaxAllCountsUnseenCells(t *testing.T) {
	q := NewQTable(rand.New(rand.NewSource(1)))
	s := game.State{game.X, game.O}
	// Every empty cell carries a negative value, the occupied ones were
	// never written. The max over all nine indices is then the default 0.
	for m := game.Move(2); m < 9; m++ {
		q.Set(s, m, -1)
	}
	if v := q.MaxAll(s); v != 0 {
		t.Errorf("expected 0 from unseen cells, got %f", v)
	}
}

func TestMaxAllSeenValues(t *testing.T) {
	q := NewQTable(rand.New(rand.NewSource(1)))
	s := game.State{}
	for m := game.Move(0); m < 9; m++ {
		q.Set(s, m, float64(m)/10)
	}
	if v := q.MaxAll(s); v != 0.8 {
		t.Errorf("expected 0.8, got %f", v)
	}
}
