package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the application logger
type Options struct {
	// Level is a zap level name; unknown names fall back to info
	Level string
	// Verbose forces debug level, like TIMESLIME_DEBUG
	Verbose bool
	// File, when set, also writes JSON logs to a rotating file
	File      string
	MaxSizeMB int
	// Console overrides stderr as the console destination
	Console zapcore.WriteSyncer
}

// ParseLevel returns the level to log at
func ParseLevel(level string, debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}

// New builds the logger. The returned func flushes buffered entries and
// closes the log file.
func New(opts Options) (*zap.Logger, func(), error) {
	level := zap.NewAtomicLevelAt(ParseLevel(opts.Level, opts.Verbose || DebugEnabled()))

	console := opts.Console
	if console == nil {
		console = zapcore.Lock(os.Stderr)
	}

	consoleEncoder := zap.NewDevelopmentEncoderConfig()
	consoleEncoder.TimeKey = ""
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoder), console, level),
	}

	var logWriter *lumberjack.Logger
	if opts.File != "" {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		logWriter = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}

		fileEncoder := zap.NewProductionEncoderConfig()
		fileEncoder.TimeKey = "timestamp"
		fileEncoder.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoder), zapcore.AddSync(logWriter), level))
	}

	logger := zap.New(zapcore.NewTee(cores...)).Named("timeslime")

	cleanup := func() {
		_ = logger.Sync()
		if logWriter != nil {
			_ = logWriter.Close()
		}
	}

	return logger, cleanup, nil
}
