// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package console opens a Linux virtual console for mirroring.
//
// A console N is read through two devices: /dev/vcsaN, which serves the
// screen buffer with attributes (see vcs(4)), and /dev/ttyN, which
// answers the VT_GETHIFONTMASK ioctl telling whether the loaded font
// uses 512 glyphs. Reading the vcsa device requires the same privileges
// as reading the console itself, usually root or the tty group.
//
// [Console.ReadFrame] rewinds the vcsa device before each read, so the
// same Console yields a fresh snapshot on every call.
package console
