package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

const (
	envPrefix = "TASKQUEST"

	keyDataDir       = "data_dir"
	keyBackend       = "backend"
	keyPointsPerTask = "points_per_task"
	keyLogLevel      = "log_level"

	// DefaultPointsPerTask is awarded for each completed task
	DefaultPointsPerTask = 50
)

// Config holds the resolved settings shared by all binaries
type Config struct {
	DataDir       string
	Backend       string
	PointsPerTask int
	LogLevel      string
}

// DataDir returns the data directory from TASKQUEST_DATA_DIR,
// falling back to DefaultDataDir.
func DataDir() string {
	if env := os.Getenv(envPrefix + "_DATA_DIR"); env != "" {
		return env
	}
	return DefaultDataDir()
}

// DefaultDataDir returns $XDG_DATA_HOME/taskquest or ~/.local/share/taskquest
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "taskquest")
}

// Load resolves the configuration from defaults, an optional config.yaml and
// TASKQUEST_* environment variables, in increasing order of precedence.
//
// With configFile empty, config.yaml is looked up in the data directory and
// may be absent. An explicit configFile must exist. A non-empty dataDir
// overrides data_dir and is where config.yaml is looked up.
func Load(configFile, dataDir string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyDataDir, DefaultDataDir())
	v.SetDefault(keyBackend, BackendSQLite)
	v.SetDefault(keyPointsPerTask, DefaultPointsPerTask)
	v.SetDefault(keyLogLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	searchDir := DataDir()
	if dataDir != "" {
		v.Set(keyDataDir, dataDir)
		searchDir = dataDir
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(searchDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		DataDir:       v.GetString(keyDataDir),
		Backend:       strings.ToLower(v.GetString(keyBackend)),
		PointsPerTask: v.GetInt(keyPointsPerTask),
		LogLevel:      v.GetString(keyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the resolved values
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (expected sqlite, file or memory)", c.Backend)
	}
	if c.PointsPerTask < 0 {
		return fmt.Errorf("points_per_task must not be negative, got %d", c.PointsPerTask)
	}
	if c.Backend != BackendMemory && strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir is required")
	}
	return nil
}

// LogPath returns the log file used by the TUI
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "taskquest.log")
}
