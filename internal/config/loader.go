package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TIMESLIME_DATABASE_DIR
const EnvPrefix = "TIMESLIME"

// Loader handles loading configuration from multiple sources
type Loader struct {
	v           *viper.Viper
	configFile  string
	searchPaths []string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		v:           viper.New(),
		searchPaths: []string{".", "$HOME/.timeslime"},
	}
}

// WithConfigFile reads configuration from path instead of searching for timeslime.yaml
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// WithSearchPaths replaces the directories searched for timeslime.yaml
func (l *Loader) WithSearchPaths(paths ...string) *Loader {
	l.searchPaths = paths
	return l
}

// ConfigFileUsed returns the configuration file that was read, if any
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file, if one is found
// 3. Override with TIMESLIME_* environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	setDefaults(l.v, NewConfig())

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if err := l.readConfigFile(); err != nil {
		return nil, err
	}

	var config Config
	if err := l.v.Unmarshal(&config); err != nil {
		return nil, &ConfigError{Field: "config", Message: err.Error()}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *Loader) readConfigFile() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName("timeslime")
		l.v.SetConfigType("yaml")
		for _, path := range l.searchPaths {
			l.v.AddConfigPath(path)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return &ConfigError{Field: "config", Message: err.Error()}
	}
	return nil
}

func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("database.dir", c.Database.Dir)
	v.SetDefault("database.filename", c.Database.Filename)
	v.SetDefault("database.result_buffer_size", c.Database.ResultBufferSize)
	v.SetDefault("application.timeout", c.Application.Timeout)
	v.SetDefault("application.verbose", c.Application.Verbose)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.file", c.Log.File)
	v.SetDefault("log.max_size_mb", c.Log.MaxSizeMB)
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DBDir      *string
	DBFilename *string

	Timeout *time.Duration
	Verbose *bool

	LogLevel *string
	LogFile  *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}

	if overrides.LogLevel != nil {
		config.Log.Level = *overrides.LogLevel
	}
	if overrides.LogFile != nil {
		config.Log.File = *overrides.LogFile
	}
}
