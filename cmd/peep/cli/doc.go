// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the error and logging conventions of the peep
// command: categorised errors ([Validation], [Internal]), an
// [ExitError] for outcomes that already printed their own message, and
// [NewCommandLogger].
package cli
