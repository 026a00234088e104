package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/notakto/internal/config"
	"github.com/rocketscienceinc/notakto/internal/engine"
	"github.com/rocketscienceinc/notakto/internal/repository"
	"github.com/rocketscienceinc/notakto/internal/repository/storage"
	"github.com/rocketscienceinc/notakto/internal/usecase"
	"github.com/rocketscienceinc/notakto/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
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

	var (
		saveRepo  repository.SaveRepository
		statsRepo repository.StatsRepository
	)

	switch conf.Storage {
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedis(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		saveRepo = repository.NewRedisSaveRepository(redisStorage)
		statsRepo = repository.NewRedisStatsRepository(redisStorage)
	default:
		saveRepo = repository.NewFileSaveRepository(conf.SaveDir)
		statsRepo = repository.NewMemoryStatsRepository()
	}

	selector := engine.NewSelector()
	if conf.Engine.Seed != 0 {
		selector = engine.NewSeededSelector(conf.Engine.Seed)
	}

	gameManager := usecase.NewGameManager(logger, saveRepo, statsRepo, selector)

	log.Info("Starting console", "storage", conf.Storage)

	if err := console.New(logger, gameManager, os.Stdin, os.Stdout).Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}
