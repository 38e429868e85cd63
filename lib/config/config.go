// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/peep/lib/vcs"
)

// EnvironmentVariable names the variable consulted by [Load].
const EnvironmentVariable = "PEEP_CONFIG"

// Config holds presentation and refresh defaults.
type Config struct {
	// Light maps the console's white-on-black to the terminal's own
	// default colors.
	Light bool `yaml:"light"`

	// Plain disables colors and trims trailing spaces.
	Plain bool `yaml:"plain"`

	// Watch keeps refreshing the mirror.
	Watch bool `yaml:"watch"`

	// Interval is the pause between refreshes, in time.ParseDuration
	// syntax.
	// Default: 1s
	Interval string `yaml:"interval"`

	// Charset selects glyph translation: raw or cp437.
	// Default: raw
	Charset string `yaml:"charset"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Interval: "1s",
		Charset:  string(vcs.CharsetRaw),
	}
}

// Load loads the file named by PEEP_CONFIG, or returns Default if the
// variable is unset or empty.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads and validates the file at path. Fields absent from the
// file keep their default values. Unknown fields are rejected so that a
// misspelled option does not silently do nothing.
func LoadFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// IntervalDuration returns Interval parsed as a duration.
func (c *Config) IntervalDuration() (time.Duration, error) {
	interval, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", c.Interval, err)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("invalid interval %q: must be positive", c.Interval)
	}
	return interval, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.IntervalDuration(); err != nil {
		errs = append(errs, err)
	}
	if _, err := vcs.ParseCharset(c.Charset); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
