// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vcs

import "fmt"

// FontMask is the value returned by the VT_GETHIFONTMASK ioctl. It is
// zero for 256-glyph fonts. For 512-glyph fonts it selects the cell bit
// used as the ninth glyph bit, which always lies in the attribute byte.
type FontMask uint16

// Attribute is a decoded video attribute. Foreground and Background are
// ANSI color indices (0 black through 7 white).
type Attribute struct {
	Foreground uint8
	Background uint8
	Bold       bool
}

func (a Attribute) String() string {
	return fmt.Sprintf("fg=%d bg=%d bold=%t", a.Foreground, a.Background, a.Bold)
}

// vgaToANSI converts a 3-bit VGA color (bit 0 blue, bit 2 red) to the
// ANSI index (bit 0 red, bit 2 blue) by reversing the three bits.
var vgaToANSI = [8]uint8{0, 4, 2, 6, 1, 5, 3, 7}

// DecodeAttribute decodes a raw attribute byte. The font mask's high
// byte is cleared from the attribute, and for a 512-glyph font all
// remaining bits are then shifted down by one, whichever bit the mask
// selected.
//
// Bits 0-2 give the foreground, bit 3 bold, bits 4-6 the background.
// Bit 7 (blink) is ignored.
func DecodeAttribute(raw byte, mask FontMask) Attribute {
	attr := raw &^ byte(mask>>8)
	if mask != 0 {
		attr >>= 1
	}
	return Attribute{
		Foreground: vgaToANSI[attr&0x07],
		Background: vgaToANSI[attr>>4&0x07],
		Bold:       attr>>3&0x01 != 0,
	}
}
