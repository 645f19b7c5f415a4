package cli

import (
	"context"
	"fmt"
	"io"

	"timeslime/internal/api"
	"timeslime/internal/domain"
)

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the add command: add <hours> [date]
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: timeslime add <hours> [date]")
	}

	hours, err := parseHoursArg(args[0])
	if err != nil {
		return err
	}

	date := domain.Today()
	if len(args) == 2 {
		if date, err = parseDateArg(args[1]); err != nil {
			return err
		}
	}

	entry, err := c.api.AddHours(ctx, hours, date)
	if err != nil {
		return c.errorHandler.Handle("add hours", err)
	}

	recorded := date
	if entry.HoursAddedDate != nil {
		recorded = *entry.HoursAddedDate
	}
	fmt.Fprintf(c.out, "Added %s hours to %s\n", formatHours(hours), recorded)
	return nil
}
