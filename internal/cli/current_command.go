package cli

import (
	"context"
	"fmt"
	"io"

	"timeslime/internal/api"
	"timeslime/internal/repository/sqlite"
)

// CurrentCommand handles clock status
type CurrentCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewCurrentCommand creates a new current command handler
func NewCurrentCommand(app *App) *CurrentCommand {
	return &CurrentCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the current command
func (c *CurrentCommand) Execute(ctx context.Context, args []string) error {
	return c.showCurrentEntry(ctx)
}

// showCurrentEntry displays the open clock pair
func (c *CurrentCommand) showCurrentEntry(ctx context.Context) error {
	entry, err := c.api.CurrentEntry(ctx)
	if err != nil {
		if c.errorHandler.IsNotClockedIn(err) {
			fmt.Fprintln(c.out, "Not clocked in")
			return nil
		}
		return c.errorHandler.Handle("read clock status", err)
	}

	duration := entry.Elapsed(timeNow())
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60

	fmt.Fprintf(c.out, "Clocked in since %s (running for %dh %dm)\n",
		sqlite.FormatTimeForDB(*entry.ClockInTime), hours, minutes)
	return nil
}
