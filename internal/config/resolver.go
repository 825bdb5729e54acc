// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
)

// RemoteSource is the minimal surface of the remote configuration
// collaborator consumed by the resolver.
//
// Get returns the raw JSON encoding of the value stored under key, a
// found flag (false means the key is absent or null), and an error for
// transport or protocol failures. The resolver treats every error as
// "value absent" after logging it; a broken config service must never
// abort startup.
type RemoteSource interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
}

// Resolver resolves configuration values by consulting the remote
// configuration service first and falling back to locally supplied
// defaults. A Resolver with a nil remote operates in degraded mode and
// always answers from the fallback source.
type Resolver struct {
	remote RemoteSource
	logger *logger.Logger
}

// NewResolver constructs a Resolver. remote may be nil when the remote
// client could not be built; the resolver then serves defaults only.
func NewResolver(remote RemoteSource, logger *logger.Logger) *Resolver {
	return &Resolver{
		remote: remote,
		logger: logger,
	}
}

// Resolve returns the remote value stored under key when one exists,
// otherwise def. The chosen source is logged; remote failures are
// logged as warnings and downgraded to the default.
func (r *Resolver) Resolve(ctx context.Context, key, def string) string {
	raw, found := r.lookup(ctx, key)
	if !found {
		r.logger.Info().Str("key", key).Str("source", "default").Msg("config value resolved")
		return def
	}

	r.logger.Info().Str("key", key).Str("source", "remote").Msg("config value resolved")
	return decodeRemoteString(raw)
}

// lookup fetches the raw remote value under key. Any failure, including
// an unconfigured remote, reads as "not found".
func (r *Resolver) lookup(ctx context.Context, key string) (json.RawMessage, bool) {
	if r.remote == nil {
		return nil, false
	}

	raw, found, err := r.remote.Get(ctx, key)
	if err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("remote config lookup failed, falling back")
		return nil, false
	}

	return raw, found
}

// decodeRemoteString renders a raw remote value as a plain string.
// JSON strings are unquoted; any other shape is returned verbatim.
func decodeRemoteString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}
