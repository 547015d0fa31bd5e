package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Move is a single applied move, kept in the game's history.
type Move struct {
	Player int    `json:"player"`
	Mark   string `json:"mark"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

type Game struct {
	ID           string     `json:"id"`
	Size         int        `json:"size"`
	Board        [][]string `json:"board"`
	MovesHistory []Move     `json:"moves_history"`
	Winner       string     `json:"winner"`
	Status       string     `json:"status"`
	Turn         string     `json:"player_turn"`
	Players      []*Player  `json:"players,omitempty"`
}

// NewGame - creates an ongoing size x size game with X to move.
func NewGame(id string, size int) *Game {
	board := make([][]string, size)
	for i := range board {
		board[i] = make([]string, size)
		for j := range board[i] {
			board[i][j] = EmptyCell
		}
	}

	return &Game{
		ID:     id,
		Size:   size,
		Board:  board,
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// DetermineGameResult - returns the winning mark, PlayerTie for a full
// board with no winner, or EmptyCell while the game continues.
// A win is a complete row, column or diagonal of one mark.
func (that *Game) DetermineGameResult() string {
	for row := range that.Board {
		if mark := that.lineWinner(row, 0, 0, 1); mark != EmptyCell {
			return mark
		}
	}

	for col := 0; col < that.Size; col++ {
		if mark := that.lineWinner(0, col, 1, 0); mark != EmptyCell {
			return mark
		}
	}

	if mark := that.lineWinner(0, 0, 1, 1); mark != EmptyCell {
		return mark
	}

	if mark := that.lineWinner(0, that.Size-1, 1, -1); mark != EmptyCell {
		return mark
	}

	for _, row := range that.Board {
		for _, cell := range row {
			if cell == EmptyCell {
				return EmptyCell
			}
		}
	}

	return PlayerTie
}

func (that *Game) lineWinner(row, col, dRow, dCol int) string {
	first := that.Board[row][col]
	if first == EmptyCell {
		return EmptyCell
	}

	for i := 1; i < that.Size; i++ {
		if that.Board[row+i*dRow][col+i*dCol] != first {
			return EmptyCell
		}
	}

	return first
}

// UpdateGameState - re-evaluates winner and status after a move.
func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	default:
		that.Status = StatusOngoing
	}
}

// MakeTurn - applies a mark to (row, col), appends the move to the
// history and hands the turn to the other player.
func (that *Game) MakeTurn(playerMark string, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if row < 0 || row >= that.Size || col < 0 || col >= that.Size {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if that.Board[row][col] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[row][col] = playerMark
	that.MovesHistory = append(that.MovesHistory, Move{
		Player: PlayerNumber(playerMark),
		Mark:   playerMark,
		Row:    row,
		Col:    col,
	})

	if that.Turn == PlayerX {
		that.Turn = PlayerO
	} else {
		that.Turn = PlayerX
	}

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// WinnerNumber - maps the winner mark to a player number: 1 for X,
// 2 for O, 0 for a tie or an unfinished game.
func (that *Game) WinnerNumber() int {
	return PlayerNumber(that.Winner)
}

// PlayerNumber - X is player 1, O is player 2, anything else is 0.
func PlayerNumber(mark string) int {
	switch mark {
	case PlayerX:
		return 1
	case PlayerO:
		return 2
	default:
		return 0
	}
}

// OpponentMark - returns the mark of the other player.
func OpponentMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
