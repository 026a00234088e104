package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/notakto/internal"
	"github.com/rocketscienceinc/notakto/internal/config"
)

const (
	configEnv  = "NOTAKTO_CONFIG"
	configFile = "config.yml"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "notakto: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := config.MustLoad(configPath())

	// the board owns stdout
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(conf.LogLevel)}))

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// configPath prefers NOTAKTO_CONFIG and falls back to config.yml in the working directory.
func configPath() string {
	if path := os.Getenv(configEnv); path != "" {
		return path
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return filepath.Join(baseDir, configFile)
}

// logLevel accepts slog level names such as "debug" or "warn+2"; anything else means info.
func logLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}

	return level
}
