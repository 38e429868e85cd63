// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads peep's optional configuration file.
//
// The file is located by the --config flag or, failing that, the
// PEEP_CONFIG environment variable. There is no automatic discovery:
// without either, [Default] applies. Flags given explicitly on the
// command line take precedence over file values.
//
// Example:
//
//	light: true
//	watch: true
//	interval: 250ms
//	charset: cp437
package config
