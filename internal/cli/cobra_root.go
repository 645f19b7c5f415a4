package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"timeslime/internal/api"
	"timeslime/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// OpenFunc builds and initializes the time sheet once configuration is final
type OpenFunc func(ctx context.Context, cfg *config.Config) (api.API, *zap.Logger, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	open   OpenFunc
	config *config.Config
	app    *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader, open OpenFunc) *RootCommand {
	root := &RootCommand{
		loader: loader,
		open:   open,
	}

	root.cmd = &cobra.Command{
		Use:   "timeslime",
		Short: "A command-line time sheet",
		Long: `timeslime records working hours in a local SQLite time sheet, either by
adding hours to a date or by clocking in and out, and reports them per day.

EXAMPLES:
  timeslime add 7.5                        # Add 7.5 hours to today
  timeslime add -1 2024/01/10              # Take an hour off January 10th
  timeslime clock in                       # Clock in now
  timeslime clock out 17:30                # Clock out at 17:30 today
  timeslime clock in 2024-01-10 09:00      # Clock in at a given date and time
  timeslime clock status                   # Show the open clock pair
  timeslime report 2024/01/01 today        # Hours per day since New Year

DATES AND TIMES:
  Dates are YYYY/MM/DD, YYYY-MM-DD or "today". Times are HH:MM or "now".

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

    TIMESLIME_DATABASE_DIR                 Database directory (default: directory of the executable)
    TIMESLIME_DATABASE_FILENAME            Database filename (default: timeslime.db)
    TIMESLIME_DATABASE_RESULT_BUFFER_SIZE  Initial query result buffer (default: 1000)
    TIMESLIME_APPLICATION_TIMEOUT          Command timeout (default: 60s)
    TIMESLIME_LOG_LEVEL                    Log level (default: info)
    TIMESLIME_LOG_FILE                     Rotating log file (default: none)
    TIMESLIME_DEBUG                        Any value enables debug logging

  The config file is timeslime.yaml in the working directory or $HOME/.timeslime,
  or the file named by --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsTimesheet(cmd) {
				return nil
			}
			return root.setup(cmd.Context(), cmd.OutOrStdout())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.teardown()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command. The time sheet is closed even when the
// command fails.
func (r *RootCommand) Execute(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if closeErr := r.teardown(); err == nil {
		err = closeErr
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (default: ./timeslime.yaml or $HOME/.timeslime/timeslime.yaml)")
	flags.String("db-dir", "", "Database directory (overrides TIMESLIME_DATABASE_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TIMESLIME_DATABASE_FILENAME)")
	flags.Duration("app-timeout", 0, "Command timeout (overrides TIMESLIME_APPLICATION_TIMEOUT)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides TIMESLIME_LOG_LEVEL)")
	flags.String("log-file", "", "Rotating log file (overrides TIMESLIME_LOG_FILE)")
	flags.BoolP("verbose", "v", false, "Enable debug logging (overrides TIMESLIME_APPLICATION_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add <hours> [date]",
		Short: "Add hours to a date",
		Long: `Add a number of hours to a date (default: today). Negative amounts
subtract hours; zero is rejected.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(r.app).Execute(ctx, args)
		},
	}

	clockCmd := &cobra.Command{
		Use:   "clock",
		Short: "Clock in, clock out, or show the open clock pair",
	}

	clockInCmd := &cobra.Command{
		Use:   "in [date] [HH:MM]",
		Short: "Clock in (default: now)",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewClockCommand(r.app).In(ctx, args)
		},
	}

	clockOutCmd := &cobra.Command{
		Use:   "out [date] [HH:MM]",
		Short: "Clock out (default: now)",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewClockCommand(r.app).Out(ctx, args)
		},
	}

	clockStatusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the open clock pair, if any",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewCurrentCommand(r.app).Execute(ctx, args)
		},
	}

	clockCmd.AddCommand(clockInCmd, clockOutCmd, clockStatusCmd)

	reportCmd := &cobra.Command{
		Use:   "report <start date> <end date>",
		Short: "Show hours per day between two dates",
		Long: `Show the hours recorded on each day between two dates, inclusive, and
their total. Open clock pairs are not counted until clocked out.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewReportCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(addCmd, clockCmd, reportCmd)
}

// needsTimesheet is false for cobra's built-in help and completion commands
func needsTimesheet(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// setup loads configuration with flag overrides and opens the time sheet
func (r *RootCommand) setup(ctx context.Context, out io.Writer) error {
	if r.app != nil {
		return nil
	}

	overrides, err := r.getConfigFromFlags()
	if err != nil {
		return err
	}

	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	r.config = cfg

	ctx, cancel := context.WithTimeout(ctx, r.getAppTimeout())
	defer cancel()

	apiInstance, logger, err := r.open(ctx, cfg)
	if err != nil {
		return NewErrorHandler(logger).Handle("open time sheet", err)
	}

	r.app = NewApp(apiInstance, cfg, out, logger)
	return nil
}

// teardown closes the time sheet if it was opened
func (r *RootCommand) teardown() error {
	if r.app == nil {
		return nil
	}
	err := r.app.api.Close()
	r.app = nil
	if err != nil {
		return fmt.Errorf("failed to close time sheet: %w", err)
	}
	return nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// getConfigFromFlags collects configuration overrides from command-line flags
func (r *RootCommand) getConfigFromFlags() (*config.ConfigOverrides, error) {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if configFile, _ := flags.GetString("config"); configFile != "" {
		r.loader.WithConfigFile(configFile)
	}

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		overrides.DBDir = &dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		overrides.DBFilename = &dbFilename
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		overrides.Timeout = &appTimeout
	}
	if logLevel, _ := flags.GetString("log-level"); logLevel != "" {
		overrides.LogLevel = &logLevel
	}
	if logFile, _ := flags.GetString("log-file"); logFile != "" {
		overrides.LogFile = &logFile
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		overrides.Verbose = &verbose
	}

	return overrides, nil
}
