package main

import (
	"context"
	"fmt"
	"os"

	"timeslime/internal/api"
	"timeslime/internal/cli"
	"timeslime/internal/config"
	"timeslime/internal/logging"

	"go.uber.org/zap"
)

func main() {
	// Flush the logger after the time sheet is closed
	var flush func()
	defer func() {
		if flush != nil {
			flush()
		}
	}()

	open := func(ctx context.Context, cfg *config.Config) (api.API, *zap.Logger, error) {
		logger, cleanup, err := logging.New(logging.Options{
			Level:     cfg.Log.Level,
			Verbose:   cfg.Application.Verbose,
			File:      cfg.Log.File,
			MaxSizeMB: cfg.Log.MaxSizeMB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create logger: %w", err)
		}
		flush = cleanup

		logger.Debug("opening time sheet", zap.String("path", cfg.GetDatabasePath()))

		ts, err := config.CreateTimesheet(ctx, cfg, logger)
		if err != nil {
			return nil, logger, err
		}
		return ts, logger, nil
	}

	root := cli.NewRootCommand(config.NewLoader(), open)
	if err := root.Execute(context.Background()); err != nil {
		if flush != nil {
			flush()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
