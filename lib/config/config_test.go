// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "peep.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Light || cfg.Plain || cfg.Watch {
		t.Errorf("expected all modes off, got %+v", cfg)
	}
	interval, err := cfg.IntervalDuration()
	if err != nil {
		t.Fatalf("IntervalDuration: %v", err)
	}
	if interval != time.Second {
		t.Errorf("expected interval=1s, got %v", interval)
	}
	if cfg.Charset != "raw" {
		t.Errorf("expected charset=raw, got %s", cfg.Charset)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadWithoutEnvironment(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	path := writeConfig(t, `
light: true
watch: true
interval: 250ms
charset: cp437
`)
	t.Setenv(EnvironmentVariable, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.Light || !cfg.Watch || cfg.Plain {
		t.Errorf("unexpected modes: %+v", cfg)
	}
	if interval, _ := cfg.IntervalDuration(); interval != 250*time.Millisecond {
		t.Errorf("expected interval=250ms, got %v", interval)
	}
	if cfg.Charset != "cp437" {
		t.Errorf("expected charset=cp437, got %s", cfg.Charset)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "plain: true\n"))
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if !cfg.Plain {
		t.Error("expected plain=true")
	}
	if cfg.Interval != "1s" || cfg.Charset != "raw" {
		t.Errorf("defaults lost: interval=%s charset=%s", cfg.Interval, cfg.Charset)
	}
}

func TestLoadFileEmpty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFile() failed on empty file: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"unknown field", "colour: true\n", "colour"},
		{"bad interval", "interval: soon\n", "invalid interval"},
		{"zero interval", "interval: 0s\n", "must be positive"},
		{"bad charset", "charset: ebcdic\n", "unknown charset"},
		{"not yaml", "light: [\n", "parsing"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, test.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), test.message) {
				t.Errorf("expected error containing %q, got %q", test.message, err.Error())
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
