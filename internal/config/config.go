// Package config loads rangectl settings from an optional YAML file and
// RANGEKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/rangekit/remap/pipeline"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "RANGEKIT_"

// Config holds the runtime settings shared by all rangectl commands.
type Config struct {
	// Workers bounds concurrent seed-range traversals. 1 runs sequentially.
	Workers int `yaml:"workers" env:"WORKERS"`
	// Order is "depth-first" or "breadth-first".
	Order     string `yaml:"order" env:"ORDER"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`
	// Group prints numbers with thousands separators.
	Group bool `yaml:"group" env:"GROUP"`
	// Strict requires consecutive maps to chain by category.
	Strict bool `yaml:"strict" env:"STRICT"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:   runtime.GOMAXPROCS(0),
		Order:     pipeline.DepthFirst.String(),
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when path
// is empty or the file does not exist) and then the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no command can run with.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if _, err := ParseOrder(c.Order); err != nil {
		return err
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown log_format %q", c.LogFormat)
	}
	return nil
}

// PipelineOrder returns the configured worklist discipline. It assumes
// Validate has passed.
func (c Config) PipelineOrder() pipeline.Order {
	o, _ := ParseOrder(c.Order)
	return o
}

// ParseOrder accepts the Order names produced by pipeline.Order.String, plus
// the short forms "dfs" and "bfs".
func ParseOrder(s string) (pipeline.Order, error) {
	switch strings.ToLower(s) {
	case "", "dfs", pipeline.DepthFirst.String():
		return pipeline.DepthFirst, nil
	case "bfs", pipeline.BreadthFirst.String():
		return pipeline.BreadthFirst, nil
	default:
		return 0, fmt.Errorf("config: unknown order %q", s)
	}
}
