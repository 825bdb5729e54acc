// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return ErrInvalidServerConfigs
	}

	if cfg.Registry.Weight <= 0 || cfg.Registry.HeartbeatInterval <= 0 {
		return ErrInvalidRegistryConfigs
	}

	if cfg.App.SecretKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
