// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// maxEnumerable caps max_length; level 15 of most classes does not fit in memory.
const maxEnumerable = 15

var errBadConfig = errors.New("permav: invalid config")

// Config is the YAML configuration of the permav binary.
//
//	max_length: 8      # default --max-length of enumerate
//	unchecked: false   # skip permutation validation
//	log_level: info    # zap level: debug, info, warn, error
//	seed: 0            # default --seed of sample; 0 picks a time based seed
type Config struct {
	MaxLength int    `yaml:"max_length"`
	Unchecked bool   `yaml:"unchecked"`
	LogLevel  string `yaml:"log_level"`
	Seed      int64  `yaml:"seed"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		MaxLength: 8,
		LogLevel:  "info",
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("permav: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("permav: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks ranges and the log level name.
func (c Config) Validate() error {
	if c.MaxLength < 0 || c.MaxLength > maxEnumerable {
		return fmt.Errorf("%w: max_length %d not in [0,%d]", errBadConfig, c.MaxLength, maxEnumerable)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", errBadConfig, c.LogLevel)
	}

	return nil
}
