// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// license server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - env — direct environment variable name for scalar fields (caarlos0/env).
type StructuredConfig struct {
	// Server holds network and timeout settings for the HTTP server.
	Server Server

	// ConfigServer points at the remote configuration service.
	ConfigServer ConfigServer

	// Registry holds the service-registry announcement settings.
	Registry Registry

	// MySQL holds the environment-variable half of the database
	// connection cascade; the remote half is resolved later by
	// [Resolver.ResolveMySQL].
	MySQL MySQLEnv

	// App holds application-level settings such as the secret key,
	// admin credentials, and the application version.
	App App

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network settings for the inbound HTTP transport.
type Server struct {
	// Port is the TCP port on which the HTTP server listens.
	// Env: PORT (default 58080)
	Port int `env:"PORT"`

	// Debug enables debug-level logging and verbose error responses.
	// Env: DEBUG (default false)
	Debug bool `env:"DEBUG"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ConfigServer identifies the remote configuration collaborator.
type ConfigServer struct {
	// URL is the base URL of the remote configuration service.
	// Env: CONFIG_SERVER_URL
	URL string `env:"CONFIG_SERVER_URL"`

	// Token authenticates requests against the configuration service.
	// It also serves as the fallback API token when the service does
	// not publish an api_tokens list.
	// Env: CONFIG_SERVER_TOKEN
	Token string `env:"CONFIG_SERVER_TOKEN"`
}

// Registry mirrors the KENGER_REGISTRY_* environment variables that
// drive optional self-registration with the discovery service.
// Registration happens only when both Host and Port are non-empty.
type Registry struct {
	// Host is the public host name or IP announced to the registry.
	// Env: KENGER_REGISTRY_HOST
	Host string `env:"KENGER_REGISTRY_HOST"`

	// Port is the announced port. Kept as a string so that "unset" and
	// "set" are distinguishable; validated when the descriptor is built.
	// Env: KENGER_REGISTRY_PORT
	Port string `env:"KENGER_REGISTRY_PORT"`

	// Namespace groups instances in the registry.
	// Env: KENGER_REGISTRY_NAMESPACE (default "jrebel")
	Namespace string `env:"KENGER_REGISTRY_NAMESPACE"`

	// Weight is the load-balancing weight announced to the registry.
	// Env: KENGER_REGISTRY_WEIGHT (default 100)
	Weight int `env:"KENGER_REGISTRY_WEIGHT"`

	// HealthPath is the path the registry probes for liveness.
	// Env: KENGER_REGISTRY_HEALTH_PATH (default "/api/status")
	HealthPath string `env:"KENGER_REGISTRY_HEALTH_PATH"`

	// HeartbeatInterval is the heartbeat period in seconds.
	// Env: KENGER_REGISTRY_HEARTBEAT_INTERVAL (default 10)
	HeartbeatInterval int `env:"KENGER_REGISTRY_HEARTBEAT_INTERVAL"`
}

// MySQLEnv holds the raw MYSQL_* environment variables. The record is
// usable only when all five values are non-empty; partial configuration
// resolves to "no database" rather than a patched record.
type MySQLEnv struct {
	Host     string `env:"MYSQL_HOST"`
	Port     string `env:"MYSQL_PORT"`
	DB       string `env:"MYSQL_DB"`
	User     string `env:"MYSQL_USER"`
	Password string `env:"MYSQL_PASSWORD"`
}

// App holds application-level configuration values.
type App struct {
	// SecretKey signs admin session tokens. Resolved from the
	// environment only; the remote config service is never consulted
	// for it.
	// Env: SECRET_KEY (default "jrebel-license-server-secret")
	SecretKey string `env:"SECRET_KEY"`

	// SigningKey is an optional PEM-encoded RSA private key used to
	// sign activation payloads. When empty an ephemeral key is
	// generated at startup.
	// Env: LICENSE_SIGNING_KEY
	SigningKey string `env:"LICENSE_SIGNING_KEY"`

	// AdminUser is the admin API principal name.
	// Env: ADMIN_USER (default "admin")
	AdminUser string `env:"ADMIN_USER"`

	// AdminPasswordHash is the bcrypt hash of the admin password.
	// When empty, password login is disabled (API tokens still work).
	// Env: ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/status endpoint.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaultConfig carries the hard-coded fallback values, applied last so
// they fill only fields no other source provided.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Port:           58080,
			RequestTimeout: 30 * time.Second,
		},
		ConfigServer: ConfigServer{
			URL:   "http://43.143.21.219:5000",
			Token: "u2InTXnmFF0Um6Sd",
		},
		Registry: Registry{
			Namespace:         "jrebel",
			Weight:            100,
			HealthPath:        "/api/status",
			HeartbeatInterval: 10,
		},
		App: App{
			SecretKey: "jrebel-license-server-secret",
			AdminUser: "admin",
			Version:   "1.0.0",
		},
	}
}
