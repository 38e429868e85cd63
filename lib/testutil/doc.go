// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [RequireReceive] encapsulates the timeout safety valve (select with a
// time.After fallback) so that tests waiting on a goroutine never hang
// the suite. It is the only place tests use a real wall-clock timeout.
//
// Helpers call t.Fatalf on failure rather than returning errors.
package testutil
