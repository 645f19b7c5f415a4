package cli

import (
	"context"
	"fmt"
	"io"

	"timeslime/internal/api"
)

// ReportCommand handles the report command
type ReportCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the report command: report <start> <end>
func (c *ReportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: timeslime report <start date> <end date>")
	}

	start, err := parseDateArg(args[0])
	if err != nil {
		return err
	}
	end, err := parseDateArg(args[1])
	if err != nil {
		return err
	}
	if resolveDate(end).Before(resolveDate(start)) {
		return fmt.Errorf("dates in wrong order: %s is after %s", args[0], args[1])
	}

	report, err := c.api.GetReport(ctx, start, end)
	if err != nil {
		return c.errorHandler.Handle("build report", err)
	}
	defer c.api.FreeReport(&report)

	if report.IsEmpty() {
		fmt.Fprintf(c.out, "No hours recorded between %s and %s\n", resolveDate(start), resolveDate(end))
		return nil
	}

	for _, entry := range report.Entries {
		fmt.Fprintf(c.out, "%s  %8s\n", entry.Date, formatHours(entry.Hours))
	}
	fmt.Fprintf(c.out, "%-10s  %8s\n", "Total", formatHours(report.Total))
	return nil
}
