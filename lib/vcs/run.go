// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vcs

import "bytes"

// Run is a span of characters written under one attribute. Text holds
// the raw glyph bytes. Attribute is nil for plain runs, which carry no
// color information.
type Run struct {
	Text      string
	Attribute *Attribute
}

// EncodeRow partitions a grid row into runs.
//
// In plain mode the whole row becomes a single run with trailing spaces
// removed; interior spaces are kept. Otherwise a new run starts at every
// column whose attribute differs from the previous column's, so
// adjacent runs never share an attribute. An empty row yields no runs.
func EncodeRow(row []GridCell, plain bool) []Run {
	if len(row) == 0 {
		return nil
	}

	if plain {
		text := make([]byte, len(row))
		for i, cell := range row {
			text[i] = cell.Char
		}
		return []Run{{Text: string(bytes.TrimRight(text, " "))}}
	}

	var runs []Run
	start := 0
	text := make([]byte, 0, len(row))
	for i, cell := range row {
		if cell.Attribute != row[start].Attribute {
			attribute := row[start].Attribute
			runs = append(runs, Run{Text: string(text), Attribute: &attribute})
			text = text[:0]
			start = i
		}
		text = append(text, cell.Char)
	}
	attribute := row[start].Attribute
	return append(runs, Run{Text: string(text), Attribute: &attribute})
}
