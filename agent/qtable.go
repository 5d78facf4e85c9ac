package agent

import (
	"math"
	"math/rand"

	"github.com/zeu5/tictactoe-rl/game"
)

// QTable maps (state, move) pairs to value estimates. Entries appear lazily
// with value 0 on first access. The state space is bounded by 3^9 so the
// table is never pruned.
type QTable struct {
	table map[game.State]map[game.Move]float64

	rand *rand.Rand
}

func NewQTable(rng *rand.Rand) *QTable {
	return &QTable{
		table: make(map[game.State]map[game.Move]float64),
		rand:  rng,
	}
}

func (q *QTable) row(s game.State) map[game.Move]float64 {
	if _, ok := q.table[s]; !ok {
		q.table[s] = make(map[game.Move]float64)
	}
	return q.table[s]
}

// Get returns the value of (s, m), inserting 0 first if the pair was never
// seen.
func (q *QTable) Get(s game.State, m game.Move) float64 {
	row := q.row(s)
	if _, ok := row[m]; !ok {
		row[m] = 0
	}
	return row[m]
}

func (q *QTable) Set(s game.State, m game.Move, val float64) {
	q.row(s)[m] = val
}

// MaxAmong returns the best of the given moves by table value together with
// that value. Ties break uniformly at random across the whole max set, not
// first match.
func (q *QTable) MaxAmong(s game.State, moves []game.Move) (game.Move, float64) {
	row := q.row(s)
	maxMoves := make([]game.Move, 0, len(moves))
	maxVal := math.Inf(-1)
	for _, m := range moves {
		if _, ok := row[m]; !ok {
			row[m] = 0
		}
		val := row[m]
		if val > maxVal {
			maxMoves = maxMoves[:0]
			maxVal = val
		}
		if val == maxVal {
			maxMoves = append(maxMoves, m)
		}
	}
	if len(maxMoves) == 0 {
		return game.NoMove, 0
	}
	return maxMoves[q.rand.Intn(len(maxMoves))], maxVal
}

// MaxAll returns the highest value of s over all nine cell indices, occupied
// cells included. Unseen pairs count as 0.
func (q *QTable) MaxAll(s game.State) float64 {
	max := math.Inf(-1)
	for m := game.Move(0); m < 9; m++ {
		if v := q.Get(s, m); v > max {
			max = v
		}
	}
	return max
}

// States counts distinct states with at least one entry.
func (q *QTable) States() int {
	return len(q.table)
}

// Len counts stored (state, move) entries.
func (q *QTable) Len() int {
	n := 0
	for _, row := range q.table {
		n += len(row)
	}
	return n
}
