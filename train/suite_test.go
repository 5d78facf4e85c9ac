package train

import (
	"context"
	"errors"
	"testing"

	"github.com/zeu5/tictactoe-rl/agent"
)

func testSuiteConfig(parallelism int) SuiteConfig {
	return SuiteConfig{
		Episodes:           200,
		CheckpointInterval: 50,
		Parallelism:        parallelism,
		Agent: agent.Config{
			Alpha:       0.1,
			Gamma:       0.9,
			Epsilon:     0.2,
			Temperature: 1.0,
			Seed:        11,
		},
	}
}

func TestSuiteRunsAllMatchups(t *testing.T) {
	s := NewSuite(StandardMatchups(), testSuiteConfig(2), testLogger())
	results, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for _, m := range StandardMatchups() {
		result, ok := results[m.Name()]
		if !ok {
			t.Errorf("missing result for %s", m.Name())
			continue
		}
		if result.Stats.TotalGames != 200 {
			t.Errorf("%s: expected 200 games, got %d", m.Name(), result.Stats.TotalGames)
		}
		if len(result.History.Checkpoints) != 4 {
			t.Errorf("%s: expected 4 checkpoints, got %d", m.Name(), len(result.History.Checkpoints))
		}
		if result.Learner == nil {
			t.Errorf("%s: learner not returned", m.Name())
		}
	}
}

func TestSuiteUnknownAgentFails(t *testing.T) {
	matchups := []Matchup{{Learner: "qlearning", Opponent: "alphazero"}}
	s := NewSuite(matchups, testSuiteConfig(1), testLogger())
	if _, err := s.Run(context.Background()); err == nil {
		t.Fatal("expected an error for an unknown opponent")
	}
}

func TestSuiteStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSuite(StandardMatchups(), testSuiteConfig(2), testLogger())
	if _, err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// Matchups run on fresh agents seeded from the shared config, so the suite
// outcome must not depend on how many workers carried it.
func TestSuiteDeterministicAcrossParallelism(t *testing.T) {
	serial := NewSuite(StandardMatchups(), testSuiteConfig(1), testLogger())
	serialResults, err := serial.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parallel := NewSuite(StandardMatchups(), testSuiteConfig(4), testLogger())
	parallelResults, err := parallel.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, sr := range serialResults {
		pr, ok := parallelResults[name]
		if !ok {
			t.Errorf("missing parallel result for %s", name)
			continue
		}
		if sr.Stats.XWins != pr.Stats.XWins || sr.Stats.OWins != pr.Stats.OWins || sr.Stats.Draws != pr.Stats.Draws {
			t.Errorf("%s: serial %d/%d/%d, parallel %d/%d/%d",
				name,
				sr.Stats.XWins, sr.Stats.OWins, sr.Stats.Draws,
				pr.Stats.XWins, pr.Stats.OWins, pr.Stats.Draws)
		}
	}
}

// Long haul: after enough training the table knows nearly every immediately
// winning move, which is enough to clearly beat a uniform random opponent.
// The 20000-game evaluation keeps the sample rate within a fraction of a
// point of the policy's true rate.
func TestQLearningBeatsRandomAfterTraining(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping training run in short mode")
	}

	learner := agent.NewQLearning(agent.Config{Alpha: 0.3, Gamma: 0.9, Epsilon: 0.3, Seed: 7})
	tr := NewTrainer(learner, agent.NewRandom(8), 50000, 10000, testLogger())
	if _, _, err := tr.Train(context.Background()); err != nil {
		t.Fatalf("training failed: %v", err)
	}

	e := NewEvaluator(learner, agent.NewRandom(9), 20000, testLogger())
	stats, err := e.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if stats.XWinRate <= 80 {
		t.Errorf("trained Q-learning won only %.1f%% against random", stats.XWinRate)
	}
	if stats.XWinRate <= 58.5 {
		t.Errorf("trained Q-learning fell below the random-vs-random baseline: %.1f%%", stats.XWinRate)
	}
}

func TestSARSABeatsRandomAfterTraining(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping training run in short mode")
	}

	learner := agent.NewSARSA(agent.Config{Alpha: 0.3, Gamma: 0.9, Epsilon: 0.3, Seed: 7})
	tr := NewTrainer(learner, agent.NewRandom(8), 50000, 10000, testLogger())
	if _, _, err := tr.Train(context.Background()); err != nil {
		t.Fatalf("training failed: %v", err)
	}

	e := NewEvaluator(learner, agent.NewRandom(9), 5000, testLogger())
	stats, err := e.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if stats.XWinRate <= 60 {
		t.Errorf("trained SARSA won only %.1f%% against random", stats.XWinRate)
	}
}
