package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a port outside the 1..65535 range).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRegistryConfigs indicates invalid registry settings
	// (for example, a non-positive weight or heartbeat interval).
	ErrInvalidRegistryConfigs = errors.New("invalid registry configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty secret key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
