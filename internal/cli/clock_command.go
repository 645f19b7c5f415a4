package cli

import (
	"context"
	"fmt"
	"io"

	"timeslime/internal/api"
	"timeslime/internal/repository/sqlite"
)

// ClockCommand handles clock in and clock out
type ClockCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewClockCommand creates a new clock command handler
func NewClockCommand(app *App) *ClockCommand {
	return &ClockCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: app.errorHandler,
	}
}

// In runs clock in [date] [HH:MM]
func (c *ClockCommand) In(ctx context.Context, args []string) error {
	ts, err := parseTimestampArgs(args)
	if err != nil {
		return err
	}

	entry, err := c.api.ClockIn(ctx, ts)
	if err != nil {
		return c.errorHandler.Handle("clock in", err)
	}

	if entry.ClockInTime != nil {
		fmt.Fprintf(c.out, "Clocked in at %s\n", sqlite.FormatTimeForDB(*entry.ClockInTime))
	} else {
		fmt.Fprintln(c.out, "Clocked in")
	}
	return nil
}

// Out runs clock out [date] [HH:MM]
func (c *ClockCommand) Out(ctx context.Context, args []string) error {
	ts, err := parseTimestampArgs(args)
	if err != nil {
		return err
	}

	entry, err := c.api.ClockOut(ctx, ts)
	if err != nil {
		return c.errorHandler.Handle("clock out", err)
	}

	if entry.ClockOutTime != nil {
		fmt.Fprintf(c.out, "Clocked out at %s (%s hours)\n",
			sqlite.FormatTimeForDB(*entry.ClockOutTime), formatHours(entry.Hours()))
	} else {
		fmt.Fprintln(c.out, "Clocked out")
	}
	return nil
}
