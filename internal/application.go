package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/arena"
	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/llm"
	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/report"
	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/repository"
	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/repository/storage"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - plays the configured number of games between two model
// players and writes the outcome summary.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	playerX, err := llm.New(ctx, "gemini", llm.Config{
		APIKey:      conf.Gemini.APIKey,
		Model:       conf.Gemini.Model,
		Temperature: conf.Gemini.Temperature,
	})
	if err != nil {
		return fmt.Errorf("could not create player X provider: %w", err)
	}

	playerO, err := llm.New(ctx, "gemini", llm.Config{
		APIKey:      conf.Gemini.APIKey,
		Model:       conf.Gemini.Model,
		Temperature: conf.Gemini.Temperature,
	})
	if err != nil {
		return fmt.Errorf("could not create player O provider: %w", err)
	}

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection)
	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	outcomeRepo := repository.NewOutcomeRepository(sqliteStorage.Connection)

	arenaInstance := arena.NewArena(logger, playerRepo, gameRepo, outcomeRepo, playerX, playerO, arena.Config{
		BoardSize: conf.Arena.BoardSize,
		Pause:     conf.Arena.Pause,
	})

	log.Info("Starting trials", "trials", conf.Arena.Trials, "board_size", conf.Arena.BoardSize)

	outcomes, runErr := arenaInstance.RunTrials(ctx, conf.Arena.Trials)

	// write out whatever finished, even on interruption
	if len(outcomes) > 0 {
		name := "outcomes_" + time.Now().Format("20060102_150405")
		if err = report.Write(conf.OutputDir, name, outcomes); err != nil {
			return fmt.Errorf("could not write report: %w", err)
		}
		log.Info("Report written", "dir", conf.OutputDir, "name", name, "games", len(outcomes))
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}
		return fmt.Errorf("trials failed: %w", runErr)
	}

	return nil
}
