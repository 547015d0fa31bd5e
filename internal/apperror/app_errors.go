package apperror

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMalformedResponse = errors.New("malformed model response")
	ErrOutOfBounds       = errors.New("move is out of bounds")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
)
