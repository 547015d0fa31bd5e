package arena

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/llm"
	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/prompt"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type outcomeRepo interface {
	Save(ctx context.Context, outcome *entity.Outcome) error
}

// Config holds arena-level game settings.
type Config struct {
	BoardSize int
	Pause     time.Duration
}

// Arena plays full games of tic-tac-toe between two model providers,
// persisting the game after every move and archiving each outcome.
type Arena struct {
	logger *slog.Logger

	playerRepo  playerRepo
	gameRepo    gameRepo
	outcomeRepo outcomeRepo

	playerX llm.Provider
	playerO llm.Provider

	conf Config

	newGameID func() string
}

func NewArena(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, outcomeRepo outcomeRepo, playerX, playerO llm.Provider, conf Config) *Arena {
	return &Arena{
		logger: logger.With("component", "arena"),

		playerRepo:  playerRepo,
		gameRepo:    gameRepo,
		outcomeRepo: outcomeRepo,

		playerX: playerX,
		playerO: playerO,

		conf: conf,

		newGameID: func() string {
			return time.Now().Format("20060102_150405")
		},
	}
}

// PlayGame - plays one game to completion. A player whose reply cannot
// be parsed or applied forfeits, and the opponent is recorded as winner.
func (that *Arena) PlayGame(ctx context.Context) (*entity.Outcome, error) {
	game := entity.NewGame(that.newGameID(), that.conf.BoardSize)

	if err := that.registerPlayers(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to register players: %w", err)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game %s interrupted: %w", game.ID, err)
		}

		mark := game.Turn
		provider := that.providerFor(mark)

		move, err := that.requestMove(ctx, provider, game, mark)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("game %s interrupted: %w", game.ID, err)
			}

			that.logger.Warn("player forfeits the game",
				"game_id", game.ID,
				"player", entity.PlayerNumber(mark),
				"provider", provider.Name(),
				"error", err,
			)

			return that.finishGame(ctx, game, entity.OpponentMark(mark), true)
		}

		if err = game.MakeTurn(mark, move.Row, move.Col); err != nil {
			that.logger.Warn("player forfeits the game",
				"game_id", game.ID,
				"player", entity.PlayerNumber(mark),
				"provider", provider.Name(),
				"error", err,
			)

			return that.finishGame(ctx, game, entity.OpponentMark(mark), true)
		}

		that.logger.Info("move applied",
			"game_id", game.ID,
			"player", entity.PlayerNumber(mark),
			"row", move.Row,
			"col", move.Col,
		)

		if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to update game: %w", err)
		}
	}

	return that.finishGame(ctx, game, game.Winner, false)
}

// RunTrials - plays n games back to back with a pause between them and
// returns the outcomes in play order.
func (that *Arena) RunTrials(ctx context.Context, n int) ([]entity.Outcome, error) {
	outcomes := make([]entity.Outcome, 0, n)

	for i := 0; i < n; i++ {
		outcome, err := that.PlayGame(ctx)
		if err != nil {
			return outcomes, fmt.Errorf("trial %d failed: %w", i+1, err)
		}

		outcomes = append(outcomes, *outcome)

		that.logger.Info("game finished",
			"game", i+1,
			"of", n,
			"game_id", outcome.GameID,
			"winner", outcome.Winner,
			"forfeit", outcome.Forfeit,
		)

		if i == n-1 || that.conf.Pause <= 0 {
			continue
		}

		// keep a gap between games so providers don't rate-limit us
		select {
		case <-time.After(that.conf.Pause):
		case <-ctx.Done():
			return outcomes, fmt.Errorf("trials interrupted: %w", ctx.Err())
		}
	}

	return outcomes, nil
}

func (that *Arena) requestMove(ctx context.Context, provider llm.Provider, game *entity.Game, mark string) (prompt.Move, error) {
	text, err := prompt.Render(prompt.Params{
		Symbol:         mark,
		OpponentSymbol: entity.OpponentMark(mark),
		BoardSize:      game.Size,
		MovesHistory:   prompt.FormatHistory(game.MovesHistory),
		Layout:         prompt.FormatLayout(game.Board),
	})
	if err != nil {
		return prompt.Move{}, fmt.Errorf("failed to render prompt: %w", err)
	}

	reply, err := provider.Generate(ctx, text)
	if err != nil {
		return prompt.Move{}, fmt.Errorf("failed to generate move: %w", err)
	}

	move, err := prompt.ParseMoveResponse(reply, game.Size, game.Board)
	if err != nil {
		return prompt.Move{}, fmt.Errorf("failed to parse move response: %w", err)
	}

	return move, nil
}

// finishGame - marks the winner, archives the outcome and removes the
// live game from storage.
func (that *Arena) finishGame(ctx context.Context, game *entity.Game, winner string, forfeit bool) (*entity.Outcome, error) {
	game.Winner = winner
	game.Status = entity.StatusFinished
	game.Turn = ""

	outcome := &entity.Outcome{
		GameID:     game.ID,
		Winner:     game.WinnerNumber(),
		Forfeit:    forfeit,
		Moves:      len(game.MovesHistory),
		FinishedAt: time.Now().UTC(),
	}

	if err := that.outcomeRepo.Save(ctx, outcome); err != nil {
		return nil, fmt.Errorf("failed to archive outcome: %w", err)
	}

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		return nil, fmt.Errorf("failed to delete finished game: %w", err)
	}

	return outcome, nil
}

func (that *Arena) registerPlayers(ctx context.Context, game *entity.Game) error {
	contestants := []*entity.Player{
		{ID: game.ID + ":1", Number: 1, Mark: entity.PlayerX, GameID: game.ID, Provider: that.playerX.Name()},
		{ID: game.ID + ":2", Number: 2, Mark: entity.PlayerO, GameID: game.ID, Provider: that.playerO.Name()},
	}

	for _, player := range contestants {
		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return fmt.Errorf("failed to save player %d: %w", player.Number, err)
		}
		game.Players = append(game.Players, player)
	}

	return nil
}

func (that *Arena) providerFor(mark string) llm.Provider {
	if mark == entity.PlayerX {
		return that.playerX
	}
	return that.playerO
}
