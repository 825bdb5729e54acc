// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and resolves the license server configuration.
//
// Configuration arrives in two stages. First, [GetStructuredConfig]
// merges environment variables, command-line flags, an optional JSON
// file, and hard-coded defaults into a [StructuredConfig]. Second, a
// [Resolver] consults the remote configuration service for the handful
// of values that may be managed centrally (MySQL connection parameters,
// API tokens, the license signing key) and folds the results, together
// with the local config, into an immutable [Settings] value.
//
// Every remote lookup degrades gracefully: a missing key, a malformed
// value, or an unreachable config service downgrades the lookup to the
// local/default source with a warning. Nothing in this package aborts
// process startup.
package config
