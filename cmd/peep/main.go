// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// peep mirrors the screen of a Linux virtual console onto the current
// terminal, with the console's colors, once or continuously.
//
// Usage:
//
//	peep [-lpw] tty
//
// The tty argument names the console: "3", "tty3", and "/dev/tty3" all
// select /dev/vcsa3. When stdout is not a terminal the output is plain
// text and --watch is ignored, so "peep tty2 > screen.txt" captures a
// clean snapshot.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/peep/cmd/peep/cli"
	"github.com/bureau-foundation/peep/lib/config"
	"github.com/bureau-foundation/peep/lib/console"
	"github.com/bureau-foundation/peep/lib/mirror"
	"github.com/bureau-foundation/peep/lib/vcs"
	"github.com/bureau-foundation/peep/lib/version"
)

func main() {
	env := &environment{
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		stdoutTerminal: term.IsTerminal(int(os.Stdout.Fd())),
		noColor:        termenv.EnvNoColor(),
		newLogger:      cli.NewCommandLogger,
		open: func(number int) (device, error) {
			opened, err := console.Open(number)
			if err != nil {
				return nil, err
			}
			return opened, nil
		},
		notify: func(ctx context.Context) (context.Context, context.CancelFunc) {
			return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		},
	}

	if err := run(context.Background(), os.Args[1:], env); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// device is an open console as seen by the command.
type device interface {
	mirror.Source
	FontMask() vcs.FontMask
	Close() error
}

// environment carries everything run takes from the process, so tests
// can substitute each piece.
type environment struct {
	stdout io.Writer
	stderr io.Writer

	// stdoutTerminal is false when stdout is a file or pipe.
	stdoutTerminal bool

	// noColor reports the NO_COLOR convention.
	noColor bool

	newLogger func(slog.Level) *slog.Logger
	open      func(number int) (device, error)

	// notify derives a context cancelled by SIGINT or SIGTERM. It is
	// installed only for watch mode; a single capture keeps the default
	// signal disposition so an interrupt ends a blocked read.
	notify func(context.Context) (context.Context, context.CancelFunc)
}

// settings is the effective configuration after merging the config
// file, flags, and the output environment.
type settings struct {
	light    bool
	plain    bool
	watch    bool
	interval time.Duration
	charset  vcs.Charset
}

func run(ctx context.Context, args []string, env *environment) error {
	var (
		configPath  string
		logLevel    string
		showVersion bool
	)

	flagSet := pflag.NewFlagSet("peep", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	// Presentation flags are read back in resolve, where only the ones
	// set explicitly override the configuration file.
	flagSet.BoolP("light", "l", false, "use the terminal's default colors for white-on-black text")
	flagSet.BoolP("plain", "p", false, "ignore all text attributes and trim trailing spaces")
	flagSet.BoolP("watch", "w", false, "keep running and refresh the mirror in place")
	flagSet.Duration("interval", mirror.DefaultInterval, "pause between refreshes in watch mode")
	flagSet.String("charset", string(vcs.CharsetRaw), "glyph translation: raw or cp437")
	flagSet.StringVar(&configPath, "config", "", "configuration file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&logLevel, "log-level", "warn", "log level on stderr: debug, info, warn, or error")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		printUsage(env.stderr)
		return cli.Validation("%w", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(env.stderr, flagSet)
		return nil
	}
	if showVersion {
		version.Fprint(env.stdout, "peep")
		return nil
	}

	level, err := cli.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := env.newLogger(level).With("command", "peep")

	positional := flagSet.Args()
	if len(positional) == 0 {
		printUsage(env.stderr)
		return &cli.ExitError{Code: 1}
	}
	if len(positional) > 1 {
		return cli.Validation("unexpected argument: %s", positional[1])
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return cli.Validation("loading configuration: %w", err)
	}
	effective, err := resolve(cfg, flagSet, env)
	if err != nil {
		return err
	}
	if !env.stdoutTerminal {
		logger.Debug("stdout is not a terminal, using plain output without watch")
	} else if env.noColor {
		logger.Debug("NO_COLOR is set, using plain output")
	}

	number, err := console.ParseNumber(positional[0])
	if err != nil {
		return cli.Validation("%w", err).
			WithHint("Name the console by number, for example \"peep tty3\" or \"peep /dev/tty3\".")
	}

	opened, err := env.open(number)
	if err != nil {
		commandError := cli.Internal("%w", err)
		if errors.Is(err, fs.ErrPermission) {
			commandError.WithHint("Reading a console screen requires root or membership in the tty group.")
		}
		return commandError
	}
	defer opened.Close()
	logger.Debug("console opened",
		"number", number,
		"font_mask", fmt.Sprintf("%#04x", uint16(opened.FontMask())),
	)

	renderer := vcs.NewRenderer(vcs.Options{
		Plain:   effective.plain,
		Light:   effective.light,
		Charset: effective.charset,
	})
	capture := mirror.New(opened, renderer, env.stdout, mirror.Config{
		Watch:    effective.watch,
		Interval: effective.interval,
		FontMask: opened.FontMask(),
		Logger:   logger,
	})
	if effective.watch {
		var stop context.CancelFunc
		ctx, stop = env.notify(ctx)
		defer stop()
	}
	if err := capture.Run(ctx); err != nil {
		return cli.Internal("%w", err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// resolve merges cfg with the flags the user set explicitly, then
// applies the output environment: output that is not a terminal gets
// no escapes and no watch, and NO_COLOR disables escapes.
func resolve(cfg *config.Config, flagSet *pflag.FlagSet, env *environment) (settings, error) {
	interval, err := cfg.IntervalDuration()
	if err != nil {
		return settings{}, cli.Validation("%w", err)
	}
	effective := settings{
		light:    cfg.Light,
		plain:    cfg.Plain,
		watch:    cfg.Watch,
		interval: interval,
	}
	charsetName := cfg.Charset

	if flagSet.Changed("light") {
		effective.light, _ = flagSet.GetBool("light")
	}
	if flagSet.Changed("plain") {
		effective.plain, _ = flagSet.GetBool("plain")
	}
	if flagSet.Changed("watch") {
		effective.watch, _ = flagSet.GetBool("watch")
	}
	if flagSet.Changed("interval") {
		effective.interval, _ = flagSet.GetDuration("interval")
		if effective.interval <= 0 {
			return settings{}, cli.Validation("invalid --interval %v: must be positive", effective.interval)
		}
	}
	if flagSet.Changed("charset") {
		charsetName, _ = flagSet.GetString("charset")
	}
	effective.charset, err = vcs.ParseCharset(charsetName)
	if err != nil {
		return settings{}, cli.Validation("%w", err)
	}

	if !env.stdoutTerminal {
		effective.plain = true
		effective.watch = false
	}
	if env.noColor {
		effective.plain = true
	}
	return effective, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: peep [-lpw] tty")
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `peep - mirror a Linux virtual console on this terminal.

Reads the screen buffer of console N from /dev/vcsaN and prints it with
its colors. With --watch the mirror refreshes in place until interrupted.
When stdout is not a terminal, output is plain text and --watch is
ignored.

Usage:
  peep [flags] tty

Examples:
  # Show console 2 once
  peep tty2

  # Follow console 1, keeping this terminal's own background
  peep -lw /dev/tty1

  # Save a text snapshot of console 3
  peep tty3 > screen.txt

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
