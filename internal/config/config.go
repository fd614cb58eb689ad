// Package config loads server settings and balance tuning from an
// optional yaml file layered over defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr" json:"addr"`
	DataDir       string        `yaml:"dataDir" json:"dataDir"`
	TickInterval  time.Duration `yaml:"tickInterval" json:"tickInterval"`
	AutosaveTicks int           `yaml:"autosaveTicks" json:"autosaveTicks"`
	FeedCapacity  int           `yaml:"feedCapacity" json:"feedCapacity"`
	// Seed fixes the simulation RNG; 0 means seed from the clock.
	Seed    int64   `yaml:"seed" json:"seed"`
	Balance Balance `yaml:"balance" json:"balance"`
}

func Default() Config {
	return Config{
		Addr:          ":8080",
		DataDir:       "data",
		TickInterval:  time.Second,
		AutosaveTicks: 30,
		FeedCapacity:  512,
		Balance:       DefaultBalance(),
	}
}

// Load reads path over the defaults. A missing file is not an error;
// the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg.normalized(), nil
}

func (c Config) normalized() Config {
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	if c.AutosaveTicks <= 0 {
		c.AutosaveTicks = 30
	}
	if c.FeedCapacity <= 0 {
		c.FeedCapacity = 512
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	return c
}
