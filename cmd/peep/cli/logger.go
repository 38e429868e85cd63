// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// ParseLevel parses a --log-level value.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return 0, Validation("invalid log level %q (want debug, info, warn, or error)", name)
	}
	return level, nil
}

// NewCommandLogger creates the command's structured logger on stderr.
// When stderr is a terminal it uses slog.TextHandler for human-readable
// output; when stderr is redirected it uses slog.JSONHandler. Logs never
// go to stdout, which carries the mirrored screen.
func NewCommandLogger(level slog.Level) *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level)
}

func newLogger(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// PrintError writes err to w in the "error: ..." form, followed by its
// hint if it carries one.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	var commandError *CommandError
	if errors.As(err, &commandError) && commandError.Hint != "" {
		fmt.Fprintf(w, "hint: %s\n", commandError.Hint)
	}
}
