package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/entity"
)

// Summary aggregates a batch of game outcomes.
type Summary struct {
	TotalGames  int              `json:"total_games"`
	Player1Wins int              `json:"player1_wins"`
	Player2Wins int              `json:"player2_wins"`
	Draws       int              `json:"draws"`
	Outcomes    []entity.Outcome `json:"outcomes"`
}

// Summarize - counts wins and draws over a batch of outcomes.
func Summarize(outcomes []entity.Outcome) Summary {
	summary := Summary{
		TotalGames: len(outcomes),
		Outcomes:   outcomes,
	}

	for _, outcome := range outcomes {
		switch outcome.Winner {
		case 1:
			summary.Player1Wins++
		case 2:
			summary.Player2Wins++
		default:
			summary.Draws++
		}
	}

	return summary
}

// Write - saves the batch summary as <name>.json and <name>.txt in dir,
// creating the directory when missing.
func Write(dir, name string, outcomes []entity.Outcome) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	summary := Summarize(outcomes)

	data, err := json.MarshalIndent(summary, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	jsonPath := filepath.Join(dir, name+".json")
	if err = os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", jsonPath, err)
	}

	txtPath := filepath.Join(dir, name+".txt")
	if err = os.WriteFile(txtPath, []byte(formatText(summary)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", txtPath, err)
	}

	return nil
}

func formatText(summary Summary) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Total games played: %d\n", summary.TotalGames)
	fmt.Fprintf(&builder, "Player 1 wins: %d\n", summary.Player1Wins)
	fmt.Fprintf(&builder, "Player 2 wins: %d\n", summary.Player2Wins)
	fmt.Fprintf(&builder, "Draws: %d\n", summary.Draws)

	builder.WriteString("\nDetailed outcomes:\n")
	for _, outcome := range summary.Outcomes {
		fmt.Fprintf(&builder, "game %s: winner %d", outcome.GameID, outcome.Winner)
		if outcome.Forfeit {
			builder.WriteString(" (by forfeit)")
		}
		fmt.Fprintf(&builder, ", %d moves\n", outcome.Moves)
	}

	return builder.String()
}
