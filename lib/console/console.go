// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/peep/lib/vcs"
)

// MaxNumber is the highest console number served by the vcs devices.
const MaxNumber = 63

// ioctlGetHiFontMask is VT_GETHIFONTMASK from linux/vt.h. The kernel
// writes an unsigned short through the argument pointer.
const ioctlGetHiFontMask = 0x560D

// ParseNumber extracts the console number from a tty argument such as
// "3", "tty3", or "/dev/tty3". Everything before the first digit is
// ignored and the digits that follow are parsed as a decimal number.
func ParseNumber(argument string) (int, error) {
	start := strings.IndexFunc(argument, func(r rune) bool { return r >= '0' && r <= '9' })
	if start < 0 {
		return 0, fmt.Errorf("invalid tty %q: no console number", argument)
	}
	end := start
	for end < len(argument) && argument[end] >= '0' && argument[end] <= '9' {
		end++
	}
	number, err := strconv.Atoi(argument[start:end])
	if err != nil || number > MaxNumber {
		return 0, fmt.Errorf("console number %s not in range [0,%d]", argument[start:end], MaxNumber)
	}
	return number, nil
}

// Paths returns the screen buffer and tty device paths for console
// number.
func Paths(number int) (vcsaPath, ttyPath string) {
	return fmt.Sprintf("/dev/vcsa%d", number), fmt.Sprintf("/dev/tty%d", number)
}

// Console is an open virtual console.
type Console struct {
	vcsa *os.File
	tty  *os.File
	mask vcs.FontMask
}

// Open opens console number and queries its font mask.
func Open(number int) (*Console, error) {
	if number < 0 || number > MaxNumber {
		return nil, fmt.Errorf("console number %d not in range [0,%d]", number, MaxNumber)
	}
	vcsaPath, ttyPath := Paths(number)
	return OpenPaths(vcsaPath, ttyPath)
}

// OpenPaths opens an explicit screen buffer and tty device pair. Both
// are opened read-only. On error nothing is left open.
func OpenPaths(vcsaPath, ttyPath string) (*Console, error) {
	vcsa, err := os.Open(vcsaPath)
	if err != nil {
		return nil, fmt.Errorf("opening screen buffer: %w", err)
	}
	tty, err := os.Open(ttyPath)
	if err != nil {
		vcsa.Close()
		return nil, fmt.Errorf("opening tty: %w", err)
	}
	mask, err := queryFontMask(tty)
	if err != nil {
		vcsa.Close()
		tty.Close()
		return nil, err
	}
	return &Console{vcsa: vcsa, tty: tty, mask: mask}, nil
}

func queryFontMask(tty *os.File) (vcs.FontMask, error) {
	var mask uint16
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		tty.Fd(),
		uintptr(ioctlGetHiFontMask),
		uintptr(unsafe.Pointer(&mask)),
	)
	if errno != 0 {
		return 0, fmt.Errorf("ioctl(%s, VT_GETHIFONTMASK): %w", tty.Name(), errno)
	}
	return vcs.FontMask(mask), nil
}

// FontMask returns the mask reported by the tty when it was opened.
func (c *Console) FontMask() vcs.FontMask { return c.mask }

// ReadFrame reads the current screen buffer from the start.
func (c *Console) ReadFrame() (*vcs.Frame, error) {
	if _, err := c.vcsa.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding %s: %w", c.vcsa.Name(), err)
	}
	return vcs.ReadFrame(c.vcsa)
}

// Close closes both devices.
func (c *Console) Close() error {
	return errors.Join(c.vcsa.Close(), c.tty.Close())
}
