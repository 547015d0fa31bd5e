package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-llm-arena/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a fresh 3x3 game
	game := entity.NewGame("123", 3)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game with one applied move
		game := entity.NewGame("123", 3)
		require.NoError(t, game.MakeTurn(entity.PlayerX, 1, 1))

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game.ID, retrievedGame.ID)
		require.Equal(t, game.Size, retrievedGame.Size)
		require.Equal(t, game.Board, retrievedGame.Board)
		require.Equal(t, game.MovesHistory, retrievedGame.MovesHistory)
		require.Equal(t, game.Turn, retrievedGame.Turn)
		require.Equal(t, game.Status, retrievedGame.Status)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
		assert.Empty(t, retrievedGame.ID)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a stored finished game
	game := entity.NewGame("123", 3)
	game.Status = entity.StatusFinished

	err := gameRepo.CreateOrUpdate(ctx, game)
	require.NoError(t, err)

	// When: DeleteByID is called with existing ID
	err = gameRepo.DeleteByID(ctx, game.ID)

	// Then: no error should be returned and the game is gone
	require.NoError(t, err)

	_, err = gameRepo.GetByID(ctx, game.ID)
	require.Error(t, err)
	assert.Equal(t, ErrGameNotFound, err)
}
