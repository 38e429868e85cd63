// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vcs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/encoding/charmap"
)

// Charset selects how glyph bytes are written to the output.
type Charset string

const (
	// CharsetRaw writes glyph bytes unchanged.
	CharsetRaw Charset = "raw"

	// CharsetCP437 translates glyph bytes through IBM code page 437,
	// the layout of the default VGA console font, into UTF-8.
	CharsetCP437 Charset = "cp437"
)

// ParseCharset validates a charset name. The empty string selects
// [CharsetRaw].
func ParseCharset(name string) (Charset, error) {
	switch Charset(name) {
	case "", CharsetRaw:
		return CharsetRaw, nil
	case CharsetCP437:
		return CharsetCP437, nil
	}
	return "", fmt.Errorf("unknown charset %q (want %q or %q)", name, CharsetRaw, CharsetCP437)
}

var (
	sgrStart = []byte("\x1b[")
	sgrEnd   = []byte("m")
	sgrReset = []byte("\x1b[0m")
)

// Options configures a [Renderer].
type Options struct {
	// Plain disables all escape sequences and trims trailing spaces
	// from every row.
	Plain bool

	// Light maps white foreground and black background to the
	// terminal's default colors.
	Light bool

	// Charset selects glyph translation. The zero value is CharsetRaw.
	Charset Charset
}

// Renderer writes grids to an output stream. It is not safe for
// concurrent use; a mirror renders frames strictly one after another.
type Renderer struct {
	plain   bool
	charset Charset
	palette *Palette

	// printed is set once the first frame has been written and never
	// cleared. It decides whether a frame must first move the cursor
	// back over the previous one.
	printed bool
}

// NewRenderer returns a Renderer that has not printed anything yet.
func NewRenderer(options Options) *Renderer {
	charset := options.Charset
	if charset == "" {
		charset = CharsetRaw
	}
	return &Renderer{
		plain:   options.Plain,
		charset: charset,
		palette: NewPalette(options.Light),
	}
}

// Printed reports whether a frame has been written successfully.
func (r *Renderer) Printed() bool { return r.printed }

// Render assembles the whole frame for grid and hands it to w in one
// Write. Every row ends in a newline. Styled output that follows an
// earlier frame starts with a cursor-previous-line escape for the
// grid's row count; plain output never moves the cursor.
func (r *Renderer) Render(w io.Writer, grid *Grid) error {
	var buffer bytes.Buffer
	r.appendFrame(&buffer, grid)
	if _, err := w.Write(buffer.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	r.printed = true
	return nil
}

func (r *Renderer) appendFrame(buffer *bytes.Buffer, grid *Grid) {
	if r.printed && !r.plain {
		buffer.WriteString(ansi.CursorPreviousLine(len(grid.Rows)))
	}
	for _, row := range grid.Rows {
		for _, run := range EncodeRow(row, r.plain) {
			if run.Attribute == nil {
				r.appendText(buffer, run.Text)
				continue
			}
			foreground, background, bold := r.palette.Codes(*run.Attribute)
			buffer.Write(sgrStart)
			buffer.WriteString(foreground)
			buffer.WriteByte(';')
			buffer.WriteString(background)
			buffer.WriteString(bold)
			buffer.Write(sgrEnd)
			r.appendText(buffer, run.Text)
			buffer.Write(sgrReset)
		}
		buffer.WriteByte('\n')
	}
}

func (r *Renderer) appendText(buffer *bytes.Buffer, text string) {
	if r.charset != CharsetCP437 {
		buffer.WriteString(text)
		return
	}
	for i := 0; i < len(text); i++ {
		buffer.WriteRune(charmap.CodePage437.DecodeByte(text[i]))
	}
}
