// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vcs

// GridCell is a screen position after attribute decoding.
type GridCell struct {
	Char      byte
	Attribute Attribute
}

// Grid is a decoded frame: Rows holds one slice of cells per screen
// row. A Grid is built from scratch for every frame.
type Grid struct {
	Rows [][]GridCell
}

// Decode builds the grid for frame, decoding every attribute with mask.
func Decode(frame *Frame, mask FontMask) *Grid {
	grid := &Grid{Rows: make([][]GridCell, len(frame.Cells))}
	for row, cells := range frame.Cells {
		decoded := make([]GridCell, len(cells))
		for column, cell := range cells {
			decoded[column] = GridCell{
				Char:      cell.Char(),
				Attribute: DecodeAttribute(cell.Attr(), mask),
			}
		}
		grid.Rows[row] = decoded
	}
	return grid
}
