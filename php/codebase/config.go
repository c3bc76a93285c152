package codebase

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// ConfigFileName is looked up in the project root directory.
const ConfigFileName = ".serenata.yml"

// ErrConfigValidation is returned when configuration validation fails.
var ErrConfigValidation = errors.New("configuration validation failed")

// Config controls which files the codebase indexes and how often the watcher
// polls for changes.
type Config struct {
	Extensions     []string `yaml:"extensions"`
	Exclude        []string `yaml:"exclude"`
	PollIntervalMS int      `yaml:"poll_interval_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Extensions:     []string{".php", ".phtml", ".inc"},
		Exclude:        []string{".git", "vendor", "node_modules"},
		PollIntervalMS: 1000,
	}
}

// LoadConfig reads .serenata.yml from rootDir. A missing file is not an
// error; defaults apply.
func LoadConfig(rootDir string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(rootDir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: extensions must not be empty", ErrConfigValidation)
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrConfigValidation, ext)
		}
	}
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("%w: poll_interval_ms must be positive", ErrConfigValidation)
	}
	return nil
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func (c *Config) matchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func (c *Config) excludesDir(name string) bool {
	for _, e := range c.Exclude {
		if name == e {
			return true
		}
	}
	return false
}
