package prompt

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/entity"
)

// FormatLayout - renders the board as pipe-separated rows, one row per
// line, with a space for every empty cell: |X| |O|
func FormatLayout(board [][]string) string {
	var builder strings.Builder

	for _, row := range board {
		builder.WriteString("|")
		for _, cell := range row {
			if cell == entity.EmptyCell {
				builder.WriteString(" ")
			} else {
				builder.WriteString(cell)
			}
			builder.WriteString("|")
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// FormatHistory - renders the move log in play order, one move per line.
func FormatHistory(moves []entity.Move) string {
	if len(moves) == 0 {
		return "No previous moves"
	}

	var builder strings.Builder

	for i, move := range moves {
		if i > 0 {
			builder.WriteString("\n")
		}
		fmt.Fprintf(&builder, "%d. player %d (%s): row %d, column %d", i+1, move.Player, move.Mark, move.Row, move.Col)
	}

	return builder.String()
}
