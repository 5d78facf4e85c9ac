package game

import (
	"errors"
	"fmt"
)

// Player marks a cell owner. X always moves first.
type Player int8

const (
	Empty Player = 0
	X     Player = 1
	O     Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

// Move indexes a board cell, row major from the top left.
type Move int

// NoMove fills the next-move slot of a terminal on-policy update.
const NoMove Move = -1

// State is the full board. It is comparable and used directly as a table key.
type State [9]Player

// Outcome of a game.
type Outcome int8

const (
	Ongoing Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	}
	return "ongoing"
}

var ErrIllegalMove = errors.New("illegal move")

// lines are the eight winning triples: rows, columns, then the two diagonals.
// Scan order decides which cell the scripted player picks when more than one
// line is open.
var lines = [8][3]Move{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// LegalMoves returns the empty cells in ascending index order.
func (s State) LegalMoves() []Move {
	moves := make([]Move, 0, 9)
	for i, c := range s {
		if c == Empty {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

// Apply returns the state with m played for p. The target cell must exist and
// be empty, anything else reports ErrIllegalMove.
func (s State) Apply(m Move, p Player) (State, error) {
	if m < 0 || m > 8 {
		return s, fmt.Errorf("%w: cell %d out of range", ErrIllegalMove, m)
	}
	if s[m] != Empty {
		return s, fmt.Errorf("%w: cell %d is occupied", ErrIllegalMove, m)
	}
	s[m] = p
	return s, nil
}

// Terminal reports the outcome of the state: a completed line wins, a full
// board without one is a draw, everything else is ongoing. All lines are
// checked for X, then for O, then the draw scan runs, so a full board with a
// line still counts as a win and malformed states resolve in favor of X.
func (s State) Terminal() Outcome {
	for _, p := range [2]Player{X, O} {
		for _, l := range lines {
			if s[l[0]] == p && s[l[1]] == p && s[l[2]] == p {
				if p == X {
					return XWins
				}
				return OWins
			}
		}
	}
	for _, c := range s {
		if c == Empty {
			return Ongoing
		}
	}
	return Draw
}

// CompletingMove returns the empty cell of the first line holding exactly two
// of p's marks, if any line does.
func (s State) CompletingMove(p Player) (Move, bool) {
	for _, l := range lines {
		count := 0
		empty := NoMove
		for _, m := range l {
			switch s[m] {
			case p:
				count++
			case Empty:
				empty = m
			}
		}
		if count == 2 && empty != NoMove {
			return empty, true
		}
	}
	return NoMove, false
}

// Board tracks one game in progress, the cells plus the turn owner.
type Board struct {
	state State
	turn  Player
}

func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset empties the board and hands the first move to X.
func (b *Board) Reset() State {
	b.state = State{}
	b.turn = X
	return b.state
}

func (b *Board) State() State {
	return b.state
}

func (b *Board) Turn() Player {
	return b.turn
}

// Apply plays m for the turn owner and flips the turn, terminal moves
// included.
func (b *Board) Apply(m Move) (State, error) {
	next, err := b.state.Apply(m, b.turn)
	if err != nil {
		return b.state, err
	}
	b.state = next
	b.turn = b.turn.Opponent()
	return next, nil
}
