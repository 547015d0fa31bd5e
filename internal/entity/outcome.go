package entity

import "time"

// Outcome records how a single finished game ended. Winner is the
// player number: 1 for X, 2 for O, 0 for a draw.
type Outcome struct {
	GameID     string    `json:"game_id"`
	Winner     int       `json:"winner"`
	Forfeit    bool      `json:"forfeit"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}
