// Package config holds the JSON configuration of the gridastar shell.
//
// A Config is used only during start-up: the binary loads it, lets flags
// override it, validates it, and turns it into a tui.Session, a logger and
// observers. Fields absent from a loaded file keep their defaults; fields
// present in it win, zero values included.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	defaultGridSize  = 20
	defaultCellWidth = 2
	defaultStepDelay = 15 * time.Millisecond
	defaultDensity   = 0.3
	defaultObserver  = "slog"
	defaultLogLevel  = "info"

	// maxGridSize bounds the lattice a terminal can reasonably show.
	maxGridSize = 500
)

// ErrInvalidConfig is returned by Validate; the message names the field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of one gridastar run.
type Config struct {
	// GridSize is N of the N×N grid.
	GridSize int `json:"grid_size,omitempty"`

	// CellWidth is the number of terminal columns drawn per cell.
	CellWidth int `json:"cell_width,omitempty"`

	// StepDelay is the pause after each redraw while a search animates.
	// "0s" in a file turns the animation pause off.
	StepDelay Duration `json:"step_delay,omitempty"`

	// Density is the obstacle fraction used by the scatter key.
	// 0 in a file makes the scatter key a no-op.
	Density float64 `json:"density,omitempty"`

	// Observer names a registered observability.Observer ("slog", "noop").
	Observer string `json:"observer,omitempty"`

	// MetricsAddr, if set, serves Prometheus metrics on this address.
	MetricsAddr string `json:"metrics_addr,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`

	// LogFile receives the log. Empty means stderr.
	LogFile string `json:"log_file,omitempty"`
}

// Default returns a Config with sensible defaults:
//   - 20×20 grid, two columns per cell
//   - 15ms step delay
//   - 30% scatter density
//   - slog observer at info level
//   - no metrics endpoint, log to stderr
func Default() Config {
	return Config{
		GridSize:  defaultGridSize,
		CellWidth: defaultCellWidth,
		StepDelay: Duration(defaultStepDelay),
		Density:   defaultDensity,
		Observer:  defaultObserver,
		LogLevel:  defaultLogLevel,
	}
}

// Merge applies non-zero values from source into c. A zero field in source
// means "unset" here; Load is the way to apply explicit zeros from a file.
func (c *Config) Merge(source *Config) {
	if source.GridSize > 0 {
		c.GridSize = source.GridSize
	}
	if source.CellWidth > 0 {
		c.CellWidth = source.CellWidth
	}
	if source.StepDelay > 0 {
		c.StepDelay = source.StepDelay
	}
	if source.Density > 0 {
		c.Density = source.Density
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if source.MetricsAddr != "" {
		c.MetricsAddr = source.MetricsAddr
	}
	if source.LogLevel != "" {
		c.LogLevel = source.LogLevel
	}
	if source.LogFile != "" {
		c.LogFile = source.LogFile
	}
}

// Load reads a JSON config file and decodes it over the defaults, so keys
// missing from the file keep their default and keys present in it replace
// it, even with a zero value. The result is not validated.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Validate reports the first field out of range, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.GridSize <= 0 || c.GridSize > maxGridSize:
		return fmt.Errorf("%w: grid_size %d not in [1,%d]", ErrInvalidConfig, c.GridSize, maxGridSize)
	case c.CellWidth <= 0:
		return fmt.Errorf("%w: cell_width %d must be positive", ErrInvalidConfig, c.CellWidth)
	case c.StepDelay < 0:
		return fmt.Errorf("%w: step_delay %s is negative", ErrInvalidConfig, c.StepDelay)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %g not in [0,1]", ErrInvalidConfig, c.Density)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// SlogLevel returns the configured level, Info if it does not parse.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return lvl
}

// ParseLevel maps debug, info, warn(ing) and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, s)
	}
}
