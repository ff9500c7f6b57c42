package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/thread-launch/engine"
	"github.com/wippyai/thread-launch/errors"
)

// Profile is a named set of thread attributes.
type Profile struct {
	Name     string `yaml:"name"`
	Detached bool   `yaml:"detached"`
}

// Config is the YAML-level launcher configuration.
type Config struct {
	// MaxThreads caps concurrently running threads. Zero means unlimited.
	MaxThreads int `yaml:"max_threads"`
	// Profiles maps profile keys to thread attributes.
	Profiles map[string]Profile `yaml:"profiles"`
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.ParseFailed("launch config", err)
	}
	if c.MaxThreads < 0 {
		return nil, errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("max_threads must not be negative, got %d", c.MaxThreads))
	}
	return &c, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err,
			fmt.Sprintf("read %s", path))
	}
	return Parse(data)
}

// Attr resolves a profile key to thread attributes.
func (c *Config) Attr(profile string) (engine.Attr, error) {
	p, ok := c.Profiles[profile]
	if !ok {
		return engine.Attr{}, errors.NotFound(errors.PhaseConfig, "profile", profile)
	}
	return engine.Attr{Name: p.Name, Detached: p.Detached}, nil
}

// Engine builds a goroutine engine honoring the configured ceiling.
func (c *Config) Engine() *engine.GoroutineEngine {
	if c.MaxThreads > 0 {
		return engine.NewGoroutineEngine(engine.WithMaxThreads(c.MaxThreads))
	}
	return engine.NewGoroutineEngine()
}
