package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFromRows(rows ...[]string) [][]string {
	return rows
}

func TestNewGame(t *testing.T) {
	t.Run("Creates an empty ongoing game with X to move", func(t *testing.T) {
		// Given: a requested 3x3 game
		game := NewGame("123", 3)

		// Then: the board is empty, X moves first and the game is ongoing
		assert.Equal(t, "123", game.ID)
		assert.Equal(t, 3, game.Size)
		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Empty(t, game.MovesHistory)

		require.Len(t, game.Board, 3)
		for _, row := range game.Board {
			require.Len(t, row, 3)
			for _, cell := range row {
				assert.Equal(t, EmptyCell, cell)
			}
		}
	})
}

func TestGame_DetermineGameResult(t *testing.T) {
	t.Run("Returns PlayerX when Player X fills a row", func(t *testing.T) {
		// Given: a game where Player X holds the top row
		game := NewGame("123", 3)
		game.Board = boardFromRows(
			[]string{PlayerX, PlayerX, PlayerX},
			[]string{EmptyCell, PlayerO, EmptyCell},
			[]string{PlayerO, EmptyCell, EmptyCell},
		)

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return PlayerX as the winner
		assert.Equal(t, PlayerX, result)
	})

	t.Run("Returns PlayerO when Player O fills a column", func(t *testing.T) {
		// Given: a game where Player O holds the first column
		game := NewGame("123", 3)
		game.Board = boardFromRows(
			[]string{PlayerO, PlayerX, EmptyCell},
			[]string{PlayerO, PlayerX, EmptyCell},
			[]string{PlayerO, EmptyCell, PlayerX},
		)

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return PlayerO as the winner
		assert.Equal(t, PlayerO, result)
	})

	t.Run("Returns the winner on the main diagonal", func(t *testing.T) {
		// Given: a game where Player X holds the main diagonal
		game := NewGame("123", 3)
		game.Board = boardFromRows(
			[]string{PlayerX, PlayerO, EmptyCell},
			[]string{PlayerO, PlayerX, EmptyCell},
			[]string{EmptyCell, EmptyCell, PlayerX},
		)

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return PlayerX as the winner
		assert.Equal(t, PlayerX, result)
	})

	t.Run("Returns the winner on the anti diagonal", func(t *testing.T) {
		// Given: a game where Player O holds the anti diagonal
		game := NewGame("123", 3)
		game.Board = boardFromRows(
			[]string{PlayerX, PlayerX, PlayerO},
			[]string{PlayerX, PlayerO, EmptyCell},
			[]string{PlayerO, EmptyCell, EmptyCell},
		)

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return PlayerO as the winner
		assert.Equal(t, PlayerO, result)
	})

	t.Run("Returns PlayerTie when the board is full with no winner", func(t *testing.T) {
		// Given: a full board with no complete line
		game := NewGame("123", 3)
		game.Board = boardFromRows(
			[]string{PlayerX, PlayerO, PlayerX},
			[]string{PlayerO, PlayerX, PlayerO},
			[]string{PlayerO, PlayerX, PlayerO},
		)

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return PlayerTie
		assert.Equal(t, PlayerTie, result)
	})

	t.Run("Returns EmptyCell while the game is ongoing", func(t *testing.T) {
		// Given: a board with moves left and no winner
		game := NewGame("123", 3)
		game.Board = boardFromRows(
			[]string{PlayerX, PlayerO, EmptyCell},
			[]string{EmptyCell, PlayerX, EmptyCell},
			[]string{EmptyCell, EmptyCell, PlayerO},
		)

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return EmptyCell (game continues)
		assert.Equal(t, EmptyCell, result)
	})

	t.Run("Win on a 4x4 board requires a full line", func(t *testing.T) {
		// Given: a 4x4 board where Player X has only three in a row
		game := NewGame("123", 4)
		game.Board[0][0] = PlayerX
		game.Board[0][1] = PlayerX
		game.Board[0][2] = PlayerX

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: three marks are not enough on a 4x4 board
		assert.Equal(t, EmptyCell, result)

		// When: the fourth mark completes the row
		game.Board[0][3] = PlayerX

		// Then: Player X wins
		assert.Equal(t, PlayerX, game.DetermineGameResult())
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", 3)

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, 0, 0)
		require.NoError(t, err)

		// Then: the board holds the mark, the history records it, and the turn passes to O
		assert.Equal(t, PlayerX, game.Board[0][0])
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)

		require.Len(t, game.MovesHistory, 1)
		assert.Equal(t, Move{Player: 1, Mark: PlayerX, Row: 0, Col: 0}, game.MovesHistory[0])
	})

	t.Run("History keeps moves in play order", func(t *testing.T) {
		// Given: a game with alternating moves
		game := NewGame("123", 3)
		require.NoError(t, game.MakeTurn(PlayerX, 0, 0))
		require.NoError(t, game.MakeTurn(PlayerO, 1, 1))
		require.NoError(t, game.MakeTurn(PlayerX, 2, 2))

		// Then: the history lists the moves in the order they were played
		require.Len(t, game.MovesHistory, 3)
		assert.Equal(t, Move{Player: 1, Mark: PlayerX, Row: 0, Col: 0}, game.MovesHistory[0])
		assert.Equal(t, Move{Player: 2, Mark: PlayerO, Row: 1, Col: 1}, game.MovesHistory[1])
		assert.Equal(t, Move{Player: 1, Mark: PlayerX, Row: 2, Col: 2}, game.MovesHistory[2])
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a game where cell (0,0) is occupied by Player X
		game := NewGame("123", 3)
		require.NoError(t, game.MakeTurn(PlayerX, 0, 0))

		// When: Player O tries to take the same cell
		err := game.MakeTurn(PlayerO, 0, 0)

		// Then: an ErrCellOccupied error should be returned and the state stays put
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, PlayerX, game.Board[0][0])
		assert.Equal(t, PlayerO, game.Turn)
		assert.Len(t, game.MovesHistory, 1)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: a new game where it's Player X's turn
		game := NewGame("123", 3)

		// When: Player O tries to move
		err := game.MakeTurn(PlayerO, 0, 1)

		// Then: an ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Empty(t, game.MovesHistory)
	})

	t.Run("Error on Out of Bounds Coordinates", func(t *testing.T) {
		game := NewGame("123", 3)

		// When: coordinates outside the board are passed
		assert.ErrorIs(t, game.MakeTurn(PlayerX, 3, 0), apperror.ErrOutOfBounds)
		assert.ErrorIs(t, game.MakeTurn(PlayerX, 0, 3), apperror.ErrOutOfBounds)
		assert.ErrorIs(t, game.MakeTurn(PlayerX, -1, 0), apperror.ErrOutOfBounds)
		assert.ErrorIs(t, game.MakeTurn(PlayerX, 0, -1), apperror.ErrOutOfBounds)
	})

	t.Run("Error on Finished Game", func(t *testing.T) {
		// Given: a finished game
		game := NewGame("123", 3)
		game.Status = StatusFinished

		// When: any player tries to move
		err := game.MakeTurn(PlayerX, 0, 0)

		// Then: an ErrGameFinished error should be returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: a game where Player X is one move from winning
		game := NewGame("123", 3)
		require.NoError(t, game.MakeTurn(PlayerX, 0, 0))
		require.NoError(t, game.MakeTurn(PlayerO, 1, 0))
		require.NoError(t, game.MakeTurn(PlayerX, 0, 1))
		require.NoError(t, game.MakeTurn(PlayerO, 1, 1))

		// When: Player X completes the top row
		require.NoError(t, game.MakeTurn(PlayerX, 0, 2))

		// Then: the game is finished with Player X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
		assert.Equal(t, 1, game.WinnerNumber())
	})

	t.Run("Full board with no winner ends in a tie", func(t *testing.T) {
		// Given: a sequence of moves that fills the board without a line
		game := NewGame("123", 3)
		moves := []struct {
			mark     string
			row, col int
		}{
			{PlayerX, 0, 0}, {PlayerO, 0, 1}, {PlayerX, 0, 2},
			{PlayerO, 1, 0}, {PlayerX, 1, 2}, {PlayerO, 1, 1},
			{PlayerX, 2, 0}, {PlayerO, 2, 2}, {PlayerX, 2, 1},
		}
		for _, m := range moves {
			require.NoError(t, game.MakeTurn(m.mark, m.row, m.col))
		}

		// Then: the game is a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, 0, game.WinnerNumber())
	})
}

func TestPlayerNumber(t *testing.T) {
	assert.Equal(t, 1, PlayerNumber(PlayerX))
	assert.Equal(t, 2, PlayerNumber(PlayerO))
	assert.Equal(t, 0, PlayerNumber(PlayerTie))
	assert.Equal(t, 0, PlayerNumber(EmptyCell))
}

func TestOpponentMark(t *testing.T) {
	assert.Equal(t, PlayerO, OpponentMark(PlayerX))
	assert.Equal(t, PlayerX, OpponentMark(PlayerO))
}
