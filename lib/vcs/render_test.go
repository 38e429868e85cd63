// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vcs

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// grid decodes rows of raw cells with no font mask.
func grid(rows ...[]Cell) *Grid {
	return Decode(&Frame{Cells: rows}, 0)
}

func render(t *testing.T, renderer *Renderer, g *Grid) string {
	t.Helper()
	var output bytes.Buffer
	if err := renderer.Render(&output, g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return output.String()
}

func TestRenderPlain(t *testing.T) {
	renderer := NewRenderer(Options{Plain: true})
	got := render(t, renderer, grid(
		textRow("AB   ", 0x07),
		textRow("    ", 0x70),
		textRow("x y", 0x1e),
	))
	if want := "AB\n\nx y\n"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderStyled(t *testing.T) {
	renderer := NewRenderer(Options{})
	got := render(t, renderer, grid(append(textRow("abc", 0x07), textRow("def", 0x1e)...)))

	want := "\x1b[37;40mabc\x1b[0m\x1b[33;44;1mdef\x1b[0m\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
	if visible := ansi.Strip(got); visible != "abcdef\n" {
		t.Errorf("visible text = %q, want %q", visible, "abcdef\n")
	}
	if blocks := strings.Count(got, "\x1b[0m"); blocks != 2 {
		t.Errorf("got %d color blocks, want 2", blocks)
	}
}

func TestRenderStyledKeepsTrailingSpaces(t *testing.T) {
	got := render(t, NewRenderer(Options{}), grid(textRow("ab  ", 0x70)))
	if want := "\x1b[30;47mab  \x1b[0m\n"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderLight(t *testing.T) {
	got := render(t, NewRenderer(Options{Light: true}), grid(
		textRow("plain", 0x07),
		textRow("blue", 0x17),
	))
	want := "\x1b[39;49mplain\x1b[0m\n\x1b[39;44mblue\x1b[0m\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderEmptyRows(t *testing.T) {
	got := render(t, NewRenderer(Options{}), grid(nil, nil))
	if got != "\n\n" {
		t.Errorf("Render = %q, want two bare line breaks", got)
	}
}

func TestRenderRepositionsAfterFirstFrame(t *testing.T) {
	renderer := NewRenderer(Options{})
	frame := grid(textRow("one", 0x07), textRow("two", 0x07), textRow("six", 0x07))

	if renderer.Printed() {
		t.Fatal("new renderer reports Printed")
	}
	first := render(t, renderer, frame)
	if strings.Contains(first, "F") {
		t.Errorf("first frame contains a reposition escape: %q", first)
	}
	if !renderer.Printed() {
		t.Fatal("Printed is false after the first frame")
	}

	second := render(t, renderer, frame)
	if !strings.HasPrefix(second, "\x1b[3F") {
		t.Errorf("second frame = %q, want prefix %q", second, "\x1b[3F")
	}
	if rest := strings.TrimPrefix(second, "\x1b[3F"); rest != first {
		t.Errorf("second frame body = %q, want %q", rest, first)
	}

	third := render(t, renderer, frame)
	if third != second {
		t.Errorf("third frame = %q, want %q", third, second)
	}
}

func TestRenderPlainNeverRepositions(t *testing.T) {
	renderer := NewRenderer(Options{Plain: true})
	frame := grid(textRow("one", 0x07), textRow("two", 0x07))

	first := render(t, renderer, frame)
	second := render(t, renderer, frame)
	if first != second {
		t.Errorf("repeat plain frame = %q, want %q", second, first)
	}
	if strings.Contains(second, "\x1b") {
		t.Errorf("plain frame contains an escape: %q", second)
	}
}

func TestRenderCP437(t *testing.T) {
	renderer := NewRenderer(Options{Plain: true, Charset: CharsetCP437})
	row := []Cell{cell('A', 0x07), cell(0xdb, 0x07), cell(0x82, 0x07), cell(' ', 0x07)}
	if got, want := render(t, renderer, grid(row)), "A█é\n"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderRawBytes(t *testing.T) {
	renderer := NewRenderer(Options{Plain: true})
	row := []Cell{cell(0xdb, 0x07)}
	if got := render(t, renderer, grid(row)); got != "\xdb\n" {
		t.Errorf("Render = %q, want %q", got, "\xdb\n")
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRenderWriteFailure(t *testing.T) {
	renderer := NewRenderer(Options{})
	frame := grid(textRow("abc", 0x07))

	broken := errors.New("broken pipe")
	if err := renderer.Render(failingWriter{err: broken}, frame); !errors.Is(err, broken) {
		t.Fatalf("Render error = %v, want %v", err, broken)
	}
	if renderer.Printed() {
		t.Error("Printed is true after a failed write")
	}

	if got := render(t, renderer, frame); strings.HasPrefix(got, "\x1b[1F") || strings.HasPrefix(got, "\x1b[F") {
		t.Errorf("frame after failed write repositions: %q", got)
	}
}

func TestParseCharset(t *testing.T) {
	tests := []struct {
		name    string
		want    Charset
		wantErr bool
	}{
		{"", CharsetRaw, false},
		{"raw", CharsetRaw, false},
		{"cp437", CharsetCP437, false},
		{"latin1", "", true},
	}
	for _, test := range tests {
		got, err := ParseCharset(test.name)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseCharset(%q) error = %v, wantErr %t", test.name, err, test.wantErr)
		}
		if got != test.want {
			t.Errorf("ParseCharset(%q) = %q, want %q", test.name, got, test.want)
		}
	}
}
