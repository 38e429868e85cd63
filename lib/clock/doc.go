// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source so that refresh
// pauses can be tested without sleeping.
//
// Structs that wait take a Clock field:
//
//	m := &Mirror{clock: clock.Real()}
//
// Tests construct a fake and drive it:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	go m.Run(ctx)
//	c.WaitForTimers(1)   // the loop is now waiting
//	c.Advance(time.Second)
//
// WaitForTimers closes the race between a goroutine registering its
// wait and the test moving time forward.
package clock
