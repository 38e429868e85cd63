// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vcs

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// MaxRows and MaxColumns are the largest dimensions a header can
	// describe: both fields are a single byte.
	MaxRows    = 255
	MaxColumns = 255

	// HeaderSize is the encoded size of a [Header].
	HeaderSize = 4

	// cellSize is the encoded size of a [Cell].
	cellSize = 2
)

// Header is the fixed prefix of a screen buffer. The cursor position
// is carried along but plays no part in rendering.
type Header struct {
	Rows    uint8
	Columns uint8
	CursorX uint8
	CursorY uint8
}

// Cell is one screen position as stored by the console: the glyph index
// in the low byte and the raw video attribute in the high byte.
type Cell uint16

// Char returns the glyph byte of the cell.
func (c Cell) Char() byte { return byte(c) }

// Attr returns the raw attribute byte of the cell, before any font mask
// is applied.
func (c Cell) Attr() byte { return byte(c >> 8) }

// Frame is one parsed screen buffer. Cells has exactly Header.Rows rows
// of Header.Columns cells each.
type Frame struct {
	Header Header
	Cells  [][]Cell
}

// ShortReadError reports that the byte source delivered fewer bytes
// than the frame layout requires. The stream can no longer be aligned
// to cell boundaries, so callers should treat it as fatal.
type ShortReadError struct {
	// Section names the part of the frame being read: "header" or
	// "row N" (zero-based).
	Section string

	// Want and Got are the requested and delivered byte counts.
	Want int
	Got  int

	// Err is the underlying read error, usually io.EOF or
	// io.ErrUnexpectedEOF.
	Err error
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("short read of frame %s: got %d of %d bytes: %v", e.Section, e.Got, e.Want, e.Err)
}

func (e *ShortReadError) Unwrap() error { return e.Err }

// ReadFrame reads exactly one screen buffer from r. The grid is sized
// from the header, so it always holds every cell the header declares.
// Any shortfall, including a source that is empty from the start,
// returns a *ShortReadError and no frame.
func ReadFrame(r io.Reader) (*Frame, error) {
	var raw [HeaderSize]byte
	if n, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, &ShortReadError{Section: "header", Want: HeaderSize, Got: n, Err: err}
	}

	frame := &Frame{
		Header: Header{
			Rows:    raw[0],
			Columns: raw[1],
			CursorX: raw[2],
			CursorY: raw[3],
		},
	}

	columns := int(frame.Header.Columns)
	buffer := make([]byte, columns*cellSize)
	frame.Cells = make([][]Cell, frame.Header.Rows)
	for row := range frame.Cells {
		if n, err := io.ReadFull(r, buffer); err != nil {
			return nil, &ShortReadError{
				Section: fmt.Sprintf("row %d", row),
				Want:    len(buffer),
				Got:     n,
				Err:     err,
			}
		}
		cells := make([]Cell, columns)
		for column := range cells {
			cells[column] = Cell(binary.NativeEndian.Uint16(buffer[column*cellSize:]))
		}
		frame.Cells[row] = cells
	}
	return frame, nil
}

// MarshalBinary encodes the frame in the screen buffer layout read by
// [ReadFrame]. Rows or columns beyond what the header declares are not
// written, and missing cells are written as zero.
//
// Sources not backed by a console device, such as test fakes, use it
// to produce input for [ReadFrame].
func (f *Frame) MarshalBinary() ([]byte, error) {
	rows, columns := int(f.Header.Rows), int(f.Header.Columns)
	data := make([]byte, HeaderSize, HeaderSize+rows*columns*cellSize)
	data[0] = f.Header.Rows
	data[1] = f.Header.Columns
	data[2] = f.Header.CursorX
	data[3] = f.Header.CursorY

	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			var cell Cell
			if row < len(f.Cells) && column < len(f.Cells[row]) {
				cell = f.Cells[row][column]
			}
			data = binary.NativeEndian.AppendUint16(data, uint16(cell))
		}
	}
	return data, nil
}
