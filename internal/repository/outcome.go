package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/entity"
)

type OutcomeRepository interface {
	Save(ctx context.Context, outcome *entity.Outcome) error
	GetByGameID(ctx context.Context, gameID string) (*entity.Outcome, error)
}

type dbOutcome struct {
	conn *sql.DB
}

func NewOutcomeRepository(conn *sql.DB) OutcomeRepository {
	return &dbOutcome{
		conn: conn,
	}
}

func (that *dbOutcome) Save(ctx context.Context, outcome *entity.Outcome) error {
	query := `INSERT OR REPLACE INTO outcomes (game_id, winner, forfeit, moves, finished_at) VALUES (?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		outcome.GameID,
		outcome.Winner,
		outcome.Forfeit,
		outcome.Moves,
		outcome.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save outcome: %w", err)
	}

	return nil
}

func (that *dbOutcome) GetByGameID(ctx context.Context, gameID string) (*entity.Outcome, error) {
	query := `SELECT game_id, winner, forfeit, moves, finished_at FROM outcomes WHERE game_id = ?`

	var outcome entity.Outcome
	var finishedAt string

	row := that.conn.QueryRowContext(ctx, query, gameID)
	if err := row.Scan(&outcome.GameID, &outcome.Winner, &outcome.Forfeit, &outcome.Moves, &finishedAt); err != nil {
		return nil, fmt.Errorf("failed to get outcome by game ID: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339, finishedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse finished_at: %w", err)
	}
	outcome.FinishedAt = parsed

	return &outcome, nil
}
