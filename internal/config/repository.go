package config

import (
	"context"

	"timeslime/internal/api"

	"go.uber.org/zap"
)

// CreateTimesheet builds a Timesheet from the configuration and opens its database
func CreateTimesheet(ctx context.Context, config *Config, logger *zap.Logger) (*api.Timesheet, error) {
	ts := api.New(api.Options{
		Filename:   config.Database.Filename,
		BufferSize: config.Database.ResultBufferSize,
		Logger:     logger,
	})

	if err := ts.Initialize(ctx, config.Database.Dir); err != nil {
		return nil, err
	}

	return ts, nil
}
