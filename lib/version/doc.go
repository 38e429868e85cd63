// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for --version.
//
// Version information is injected at build time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/peep/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// The variables default to "unknown" / "0.1.0-dev" in development
// builds and test runs.
package version
