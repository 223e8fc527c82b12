// Package config loads tourplan settings from defaults, an optional config
// file, TOURPLAN_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override (log.level -> TOURPLAN_LOG_LEVEL).
const EnvPrefix = "TOURPLAN"

// ErrInvalid is returned when a loaded value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the full tool configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Solver SolverConfig `mapstructure:"solver"`
	Store  StoreConfig  `mapstructure:"store"`
}

// LogConfig configures the logger package.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// SolverConfig bounds the exact search.
type SolverConfig struct {
	Workers   int           `mapstructure:"workers"`
	WarnAbove int           `mapstructure:"warn_above"` // warn when more locations than this
	Timeout   time.Duration `mapstructure:"timeout"`    // 0 = no limit
}

// StoreConfig points at the optional SQLite database.
type StoreConfig struct {
	Path string `mapstructure:"path"` // empty disables persistence
}

// Flag names bound to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"workers":    "solver.workers",
	"warn-above": "solver.warn_above",
	"timeout":    "solver.timeout",
	"db":         "store.path",
}

// RegisterFlags adds the configuration flags to fs. Their defaults are the
// built-in defaults; only flags the user actually sets override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("log-format", "text", "log format (text, json)")
	fs.Int("workers", runtime.GOMAXPROCS(0), "parallel search workers (1 = sequential)")
	fs.Int("warn-above", 10, "warn when planning more locations than this")
	fs.Duration("timeout", 0, "give up after this long (0 = no limit)")
	fs.String("db", "", "SQLite database for matrices and run history")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("solver.workers", runtime.GOMAXPROCS(0))
	v.SetDefault("solver.warn_above", 10)
	v.SetDefault("solver.timeout", time.Duration(0))
	v.SetDefault("store.path", "")
}

// Load merges defaults, the config file at path (skipped when empty), the
// environment and fs (may be nil), then validates the result.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if c.Solver.Workers < 1 {
		return fmt.Errorf("%w: solver.workers %d, want ≥ 1", ErrInvalid, c.Solver.Workers)
	}
	if c.Solver.WarnAbove < 2 {
		return fmt.Errorf("%w: solver.warn_above %d, want ≥ 2", ErrInvalid, c.Solver.WarnAbove)
	}
	if c.Solver.Timeout < 0 {
		return fmt.Errorf("%w: solver.timeout %v", ErrInvalid, c.Solver.Timeout)
	}

	return nil
}
