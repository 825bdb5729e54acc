// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "context"

// remote key under which the config service may publish a PEM-encoded
// RSA private key for signing activation payloads.
const signingKeyKey = "license.signing_key"

// Settings is the immutable application configuration produced once at
// startup by folding the remote cascade over the structured config.
// It is passed by reference into the services and handlers; nothing
// mutates it after [Resolver.BuildSettings] returns.
type Settings struct {
	// SecretKey signs admin session tokens. Environment/default only.
	SecretKey string

	// APITokens are the accepted static admin API tokens.
	APITokens []string

	// MySQL is the resolved database record, or nil when no database is
	// configured.
	MySQL *MySQLConfig

	// SigningKeyPEM is the PEM-encoded RSA key for activation payload
	// signatures, or empty when an ephemeral key should be generated.
	SigningKeyPEM string

	// AdminUser and AdminPasswordHash drive admin password login.
	AdminUser         string
	AdminPasswordHash string

	// Version is the reported application version.
	Version string

	// Debug mirrors the server debug flag.
	Debug bool
}

// BuildSettings resolves every remotely managed value and combines the
// results with the local structured config. It is called exactly once,
// before the HTTP server starts accepting connections, so the returned
// Settings can be shared without locking.
func (r *Resolver) BuildSettings(ctx context.Context, cfg *StructuredConfig) *Settings {
	return &Settings{
		// the secret key never goes through the remote cascade
		SecretKey: cfg.App.SecretKey,

		APITokens:     r.ResolveAPITokens(ctx, cfg.ConfigServer.Token),
		MySQL:         r.ResolveMySQL(ctx, cfg.MySQL),
		SigningKeyPEM: r.Resolve(ctx, signingKeyKey, cfg.App.SigningKey),

		AdminUser:         cfg.App.AdminUser,
		AdminPasswordHash: cfg.App.AdminPasswordHash,
		Version:           cfg.App.Version,
		Debug:             cfg.Server.Debug,
	}
}
