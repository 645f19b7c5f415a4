package cli

import (
	"io"
	"os"
	"time"

	"timeslime/internal/api"
	"timeslime/internal/config"

	"go.uber.org/zap"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App carries what every command handler needs
type App struct {
	api          api.API
	config       *config.Config
	out          io.Writer
	logger       *zap.Logger
	errorHandler *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config, out io.Writer, logger *zap.Logger) *App {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		api:          apiInstance,
		config:       cfg,
		out:          out,
		logger:       logger,
		errorHandler: NewErrorHandler(logger),
	}
}
