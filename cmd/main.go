package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/moviefav/internal/services"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}

	if err := shared.LoadEnv(config); err != nil {
		logger.Fatalf("configuration error: %v", err)
	}

	level, err := shared.ParseLogLevel(config.Log.Level)
	if err != nil {
		logger.Warn("invalid log level, using info", "error", err)
	}
	shared.SetLogLevel(logger, level)

	httpClient := &http.Client{Timeout: time.Duration(config.API.TimeoutSeconds) * time.Second}
	apiService := services.NewAPIService(config.API.BaseURL, httpClient)

	runner := NewRunner(RunnerOpts{
		Config: config,
		API:    apiService,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "moviefav",
		Usage:    "Browse movies and keep track of your favorites",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	err = app.Run(context.Background(), os.Args)
	runner.Close()

	if err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented", "error", err)
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}
