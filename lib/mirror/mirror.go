// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mirror runs the capture loop: read a frame from a console,
// render it, and in watch mode pause and repeat until stopped.
//
// Steps never overlap. A frame is fully rendered before the pause
// begins and the next read starts only after the pause ends, so frames
// appear in exactly the order they were read.
package mirror

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bureau-foundation/peep/lib/clock"
	"github.com/bureau-foundation/peep/lib/vcs"
)

// DefaultInterval is the pause between frames in watch mode.
const DefaultInterval = time.Second

// Source yields screen buffer snapshots. *console.Console implements it.
type Source interface {
	ReadFrame() (*vcs.Frame, error)
}

// Config configures a [Mirror].
type Config struct {
	// Watch repeats the capture until the context is cancelled.
	Watch bool

	// Interval is the pause between frames in watch mode. Zero selects
	// DefaultInterval.
	Interval time.Duration

	// FontMask is passed to attribute decoding for every frame.
	FontMask vcs.FontMask

	// Clock times the pause. Nil selects clock.Real().
	Clock clock.Clock

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// Mirror copies a console's screen to a writer.
type Mirror struct {
	source   Source
	renderer *vcs.Renderer
	output   io.Writer

	watch    bool
	interval time.Duration
	mask     vcs.FontMask
	clock    clock.Clock
	logger   *slog.Logger
}

// New returns a Mirror reading from source and writing through renderer
// to output.
func New(source Source, renderer *vcs.Renderer, output io.Writer, config Config) *Mirror {
	mirror := &Mirror{
		source:   source,
		renderer: renderer,
		output:   output,
		watch:    config.Watch,
		interval: config.Interval,
		mask:     config.FontMask,
		clock:    config.Clock,
		logger:   config.Logger,
	}
	if mirror.interval <= 0 {
		mirror.interval = DefaultInterval
	}
	if mirror.clock == nil {
		mirror.clock = clock.Real()
	}
	if mirror.logger == nil {
		mirror.logger = slog.New(slog.DiscardHandler)
	}
	return mirror
}

// Run captures one frame, or in watch mode keeps capturing until ctx is
// cancelled. Cancellation is observed during the pause; a frame already
// being read or rendered completes first. A read or write error stops
// the loop and is returned; nothing of the failed frame is written.
func (m *Mirror) Run(ctx context.Context) error {
	for frames := 1; ; frames++ {
		if err := m.step(); err != nil {
			return err
		}
		if !m.watch {
			return nil
		}
		select {
		case <-ctx.Done():
			m.logger.Debug("watch stopped", "frames", frames)
			return nil
		case <-m.clock.After(m.interval):
		}
	}
}

func (m *Mirror) step() error {
	started := m.clock.Now()
	frame, err := m.source.ReadFrame()
	if err != nil {
		return fmt.Errorf("reading frame: %w", err)
	}
	grid := vcs.Decode(frame, m.mask)
	if err := m.renderer.Render(m.output, grid); err != nil {
		return err
	}
	m.logger.Debug("frame rendered",
		"rows", frame.Header.Rows,
		"columns", frame.Header.Columns,
		"cursor_x", frame.Header.CursorX,
		"cursor_y", frame.Header.CursorY,
		"elapsed", m.clock.Now().Sub(started),
	)
	return nil
}
