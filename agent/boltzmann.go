package agent

import (
	"math"
	"time"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/zeu5/tictactoe-rl/game"
)

// Boltzmann keeps the off-policy update of QLearning but explores by sampling
// moves in proportion to exp(Q/temperature) instead of epsilon-greedy.
type Boltzmann struct {
	*QLearning
	temperature float64
	src         erand.Source
}

var _ OffPolicyLearner = &Boltzmann{}

func NewBoltzmann(cfg Config) *Boltzmann {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Boltzmann{
		QLearning:   NewQLearning(cfg),
		temperature: cfg.Temperature,
		src:         erand.NewSource(uint64(seed)),
	}
}

func (b *Boltzmann) Name() string {
	return "boltzmann"
}

// SelectMove samples among the legal moves with softmax weights over their
// table values. Values are shifted by the largest before exponentiation to
// keep the weights finite. Without explore it falls back to the greedy
// argmax.
func (b *Boltzmann) SelectMove(s game.State, legal []game.Move, explore bool) game.Move {
	if !explore {
		m, _ := b.table.MaxAmong(s, legal)
		return m
	}

	vals := make([]float64, len(legal))
	largest := math.Inf(-1)
	for i, m := range legal {
		vals[i] = b.table.Get(s, m) / b.temperature
		if vals[i] > largest {
			largest = vals[i]
		}
	}
	sum := 0.0
	for i := range vals {
		vals[i] = math.Exp(vals[i] - largest)
		sum += vals[i]
	}
	weights := make([]float64, len(vals))
	for i, v := range vals {
		weights[i] = v / sum
	}

	i, ok := sampleuv.NewWeighted(weights, b.src).Take()
	if !ok {
		m, _ := b.table.MaxAmong(s, legal)
		return m
	}
	return legal[i]
}
