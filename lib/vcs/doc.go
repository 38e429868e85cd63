// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package vcs decodes Linux virtual console screen buffers and renders
// them as text for another terminal.
//
// A screen buffer as exposed by /dev/vcsaN is a 4-byte header (rows,
// columns, cursor x, cursor y) followed by rows*columns 16-bit cells in
// native byte order. The low byte of a cell is the glyph index and the
// high byte is the VGA video attribute. [ReadFrame] parses one such
// buffer into a [Frame].
//
// [Decode] turns a Frame into a [Grid] of characters and decoded
// [Attribute] values. The attribute byte stores its color components in
// VGA order (blue in bit 0, red in bit 2), the reverse of the ANSI color
// numbering, so each 3-bit index passes through a fixed permutation.
// When the console font has 512 glyphs, one attribute bit carries the
// ninth glyph bit; the [FontMask] reported by the tty identifies it and
// the attribute is shifted down past it.
//
// [EncodeRow] splits a grid row into runs of cells sharing an attribute.
// [Renderer] writes a whole grid either as plain text (trailing spaces
// trimmed, no escapes) or as SGR-decorated text using a [Palette].
// A Renderer remembers whether it has printed before; every frame after
// the first is prefixed with a cursor-previous-line escape so that a
// continuously refreshed mirror overwrites itself in place.
package vcs
