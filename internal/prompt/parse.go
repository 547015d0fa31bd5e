package prompt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/entity"
)

// Move is the coordinate pair extracted from a model reply.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveResponse is the wire shape the model is instructed to reply with.
type MoveResponse struct {
	Move Move `json:"move"`
}

// rawMoveResponse mirrors MoveResponse with pointer fields so that a
// syntactically valid object with missing keys is still rejected.
type rawMoveResponse struct {
	Move *struct {
		Row *int `json:"row"`
		Col *int `json:"col"`
	} `json:"move"`
}

// ParseMoveResponse - extracts a move from the model's reply and
// validates it against the board. The reply must be exactly one JSON
// object of the instructed shape: unknown fields, non-integer
// coordinates and trailing content are all rejected.
func ParseMoveResponse(raw string, boardSize int, board [][]string) (Move, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.DisallowUnknownFields()

	var response rawMoveResponse
	if err := decoder.Decode(&response); err != nil {
		return Move{}, fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return Move{}, fmt.Errorf("%w: unexpected content after JSON object", apperror.ErrMalformedResponse)
	}

	if response.Move == nil || response.Move.Row == nil || response.Move.Col == nil {
		return Move{}, fmt.Errorf("%w: missing move coordinates", apperror.ErrMalformedResponse)
	}

	move := Move{Row: *response.Move.Row, Col: *response.Move.Col}

	if move.Row < 0 || move.Row >= boardSize || move.Col < 0 || move.Col >= boardSize {
		return Move{}, fmt.Errorf("%w: row %d, col %d on a %dx%d board", apperror.ErrOutOfBounds, move.Row, move.Col, boardSize, boardSize)
	}

	if board[move.Row][move.Col] != entity.EmptyCell {
		return Move{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, move.Row, move.Col)
	}

	return move, nil
}
