package game

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Render draws the state as a 3x3 grid, X in red, O in blue.
func Render(s State) string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			switch s[3*row+col] {
			case X:
				cells[col] = fmt.Sprintf("%s", aurora.Red("X"))
			case O:
				cells[col] = fmt.Sprintf("%s", aurora.Blue("O"))
			default:
				cells[col] = " "
			}
		}
		fmt.Fprintf(&b, " %s | %s | %s \n", cells[0], cells[1], cells[2])
		if row < 2 {
			b.WriteString("---+---+---\n")
		}
	}
	return b.String()
}

// Legend draws the grid with cell indices so a player knows what to type.
func Legend() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&b, " %d | %d | %d \n", 3*row, 3*row+1, 3*row+2)
		if row < 2 {
			b.WriteString("---+---+---\n")
		}
	}
	return b.String()
}
