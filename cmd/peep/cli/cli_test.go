// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
)

func TestCommandErrorWrapping(t *testing.T) {
	err := Internal("opening console: %w", fs.ErrPermission)
	if err.Category != CategoryInternal {
		t.Errorf("Category = %q, want %q", err.Category, CategoryInternal)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is does not reach the wrapped error")
	}
	if err.Error() != "opening console: permission denied" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 2}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 2 {
		t.Errorf("ExitError does not report code 2")
	}
}

func TestPrintError(t *testing.T) {
	var output bytes.Buffer
	PrintError(&output, Validation("bad tty").WithHint("pass a console number such as tty3"))
	want := "error: bad tty\nhint: pass a console number such as tty3\n"
	if output.String() != want {
		t.Errorf("PrintError = %q, want %q", output.String(), want)
	}

	output.Reset()
	PrintError(&output, errors.New("plain failure"))
	if output.String() != "error: plain failure\n" {
		t.Errorf("PrintError = %q", output.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, test := range tests {
		got, err := ParseLevel(test.name)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %t", test.name, err, test.wantErr)
			continue
		}
		if got != test.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestNewLoggerFormats(t *testing.T) {
	var output bytes.Buffer
	newLogger(&output, false, slog.LevelInfo).Info("console opened", "number", 3)
	var record map[string]any
	if err := json.Unmarshal(output.Bytes(), &record); err != nil {
		t.Fatalf("non-terminal output is not JSON: %q", output.String())
	}
	if record["msg"] != "console opened" {
		t.Errorf("msg = %v", record["msg"])
	}

	output.Reset()
	newLogger(&output, true, slog.LevelInfo).Info("console opened", "number", 3)
	if !strings.Contains(output.String(), "msg=\"console opened\" number=3") {
		t.Errorf("terminal output = %q, want text format", output.String())
	}

	output.Reset()
	newLogger(&output, true, slog.LevelWarn).Info("hidden")
	if output.Len() != 0 {
		t.Errorf("info record logged at warn level: %q", output.String())
	}
}
