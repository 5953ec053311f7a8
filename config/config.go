// Package config loads run configuration for the simulator from a YAML
// file. Values left zero fall back to defaults, and CLI flags are
// expected to override whatever the file provides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one simulation run.
type Config struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	Steps           int     `yaml:"steps"` // <= 0 means run until quit
	Rule            string  `yaml:"rule"`
	LiveProbability float64 `yaml:"live_probability"`
	Seed            int64   `yaml:"seed"` // 0 means time-based
	Threads         int     `yaml:"threads"`
	Strategy        string  `yaml:"strategy"`
	BlockRows       int     `yaml:"block_rows"`
	FPS             int     `yaml:"fps"`
}

// Default mirrors the classic 80x24 terminal board.
func Default() Config {
	return Config{
		Width:           80,
		Height:          24,
		Steps:           -1,
		Rule:            "B3/S23",
		LiveProbability: 0.25,
		Strategy:        "rows",
		FPS:             10,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulator must not start with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid grid dimensions %dx%d: both must be positive", c.Width, c.Height)
	}
	if c.LiveProbability < 0 || c.LiveProbability > 1 {
		return fmt.Errorf("live_probability %v out of range [0,1]", c.LiveProbability)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
