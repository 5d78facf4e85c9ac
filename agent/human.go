package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zeu5/tictactoe-rl/game"
)

// Human asks an interactive player for a cell index. Input that is not a
// number, out of range or an occupied cell is reported and re-prompted, so
// the driver only ever sees legal moves.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ Agent = &Human{}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (h *Human) Name() string {
	return "human"
}

func (h *Human) Kind() LearnerKind {
	return LearnerNone
}

func (h *Human) SelectMove(s game.State, legal []game.Move, _ bool) game.Move {
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, game.Render(s))
	for {
		fmt.Fprint(h.out, "Your move (0-8): ")
		if !h.in.Scan() {
			// Input is gone, concede the first legal move instead of
			// spinning on a closed reader.
			return legal[0]
		}
		n, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err != nil {
			fmt.Fprintln(h.out, "Enter a number between 0 and 8.")
			continue
		}
		if n < 0 || n > 8 {
			fmt.Fprintln(h.out, "Cell must be between 0 and 8.")
			continue
		}
		if s[n] != game.Empty {
			fmt.Fprintln(h.out, "That cell is taken, pick another.")
			continue
		}
		return game.Move(n)
	}
}
