// Package config loads simulation settings from YAML files.
//
// Values missing from the file keep their defaults; command-line flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Renderer names accepted by Config.Renderer.
const (
	RendererTerminal = "term"
	RendererWindow   = "window"
	RendererHeadless = "headless"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything needed to build and drive a simulation.
type Config struct {
	Size        int           `yaml:"size"`
	Workers     int           `yaml:"workers"`
	TickRate    time.Duration `yaml:"tick_rate"`
	Density     float64       `yaml:"density"`
	Seed        uint64        `yaml:"seed"` // 0 means nondeterministic
	Pattern     string        `yaml:"pattern,omitempty"`
	Centered    bool          `yaml:"centered"`
	Renderer    string        `yaml:"renderer"`
	Generations int           `yaml:"generations"` // headless only; 0 runs until interrupted
	CellSize    int           `yaml:"cell_size"`   // window renderer pixels per cell
	LogLevel    string        `yaml:"log_level"`
}

// Default returns sensible defaults
func Default() Config {
	return Config{
		Size:     128,
		Workers:  4,
		TickRate: 50 * time.Millisecond,
		Density:  0.5,
		Centered: true,
		Renderer: RendererTerminal,
		CellSize: 4,
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if c.Size <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %d", c.Size))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %v", c.TickRate))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density must be in [0,1], got %v", c.Density))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations must not be negative, got %d", c.Generations))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", c.CellSize))
	}
	switch c.Renderer {
	case RendererTerminal, RendererWindow, RendererHeadless:
	default:
		errs = append(errs, fmt.Errorf("unknown renderer %q", c.Renderer))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
