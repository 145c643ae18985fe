// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nooverlap/selection"
)

// ErrInvalidConfig indicates a setting that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Engine EngineConfig `yaml:"engine"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// EngineConfig tunes the selection engine.
type EngineConfig struct {
	// Strategy is "graph" or "sweep".
	Strategy string `yaml:"strategy"`
	// MaxIntervals caps the candidates accepted in one query.
	MaxIntervals int `yaml:"max_intervals"`
}

// ServerConfig configures the HTTP host.
type ServerConfig struct {
	Addr             string        `yaml:"addr"`
	BatchConcurrency int           `yaml:"batch_concurrency"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	Metrics          bool          `yaml:"metrics"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Engine: EngineConfig{
			Strategy:     string(selection.StrategyGraph),
			MaxIntervals: 4096,
		},
		Server: ServerConfig{
			Addr:             ":8080",
			BatchConcurrency: 4,
			ReadTimeout:      10 * time.Second,
			Metrics:          true,
		},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document over Default and validates it. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if _, err := selection.ParseStrategy(c.Engine.Strategy); err != nil {
		return fmt.Errorf("%w: engine.strategy: %v", ErrInvalidConfig, err)
	}
	if c.Engine.MaxIntervals <= 0 {
		return fmt.Errorf("%w: engine.max_intervals must be positive, got %d", ErrInvalidConfig, c.Engine.MaxIntervals)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if c.Server.BatchConcurrency <= 0 {
		return fmt.Errorf("%w: server.batch_concurrency must be positive, got %d", ErrInvalidConfig, c.Server.BatchConcurrency)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("%w: server.read_timeout must be positive, got %s", ErrInvalidConfig, c.Server.ReadTimeout)
	}

	return nil
}

// Strategy returns the validated engine strategy.
func (c Config) Strategy() selection.Strategy {
	s, err := selection.ParseStrategy(c.Engine.Strategy)
	if err != nil {
		return selection.StrategyGraph
	}

	return s
}
