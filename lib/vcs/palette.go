// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vcs

const (
	// defaultForeground and defaultBackground select the output
	// terminal's own colors.
	defaultForeground = "39"
	defaultBackground = "49"

	// boldSuffix is appended to the SGR parameter list for bold runs.
	boldSuffix = ";1"
)

var (
	standardForeground = [8]string{"30", "31", "32", "33", "34", "35", "36", "37"}
	standardBackground = [8]string{"40", "41", "42", "43", "44", "45", "46", "47"}
)

// Palette maps decoded attributes to SGR parameters. A Palette is
// immutable once built; build one per process with [NewPalette].
type Palette struct {
	foreground [8]string
	background [8]string
}

// NewPalette returns the standard eight-color palette. In light mode the
// console's usual colors (white on black) map to the terminal defaults
// instead, so the mirror blends with the terminal's own theme.
func NewPalette(light bool) *Palette {
	palette := &Palette{
		foreground: standardForeground,
		background: standardBackground,
	}
	if light {
		palette.foreground[7] = defaultForeground
		palette.background[0] = defaultBackground
	}
	return palette
}

// Codes returns the SGR foreground parameter, background parameter, and
// bold suffix (empty unless bold) for attribute. Color indices are taken
// modulo 8.
func (p *Palette) Codes(attribute Attribute) (foreground, background, bold string) {
	foreground = p.foreground[attribute.Foreground&0x07]
	background = p.background[attribute.Background&0x07]
	if attribute.Bold {
		bold = boldSuffix
	}
	return foreground, background, bold
}
