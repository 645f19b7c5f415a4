package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration options for timeslime
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Application ApplicationConfig `mapstructure:"application"`
	Log         LogConfig         `mapstructure:"log"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir              string `mapstructure:"dir"`
	Filename         string `mapstructure:"filename"`
	ResultBufferSize int    `mapstructure:"result_buffer_size"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Verbose bool          `mapstructure:"verbose"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level     string `mapstructure:"level"`
	File      string `mapstructure:"file"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:              DefaultDatabaseDir(),
			Filename:         "timeslime.db",
			ResultBufferSize: 1000,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Log: LogConfig{
			Level:     "info",
			File:      "",
			MaxSizeMB: 10,
		},
	}
}

// DefaultDatabaseDir is the directory holding the running executable
func DefaultDatabaseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if filepath.Base(c.Database.Filename) != c.Database.Filename {
		return &ConfigError{Field: "database.filename", Message: "database filename must not contain a directory"}
	}
	if c.Database.ResultBufferSize < 1 {
		return &ConfigError{Field: "database.result_buffer_size", Message: "result buffer size must be at least 1"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if c.Log.MaxSizeMB < 1 {
		return &ConfigError{Field: "log.max_size_mb", Message: "log file size must be at least 1 MB"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
