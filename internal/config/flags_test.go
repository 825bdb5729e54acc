// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags_AllFlags(t *testing.T) {
	// Arrange
	args := []string{
		"-port", "18080",
		"-debug",
		"-request-timeout", "45s",
		"-config-server-url", "http://config.internal:5000",
		"-config-server-token", "flag-token",
		"-secret-key", "flag-secret",
		"-config", "/etc/jrebel/config.json",
	}

	// Act
	cfg := parseFlags(newTestFlagSet(), args)

	// Assert
	assert.Equal(t, 18080, cfg.Server.Port)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://config.internal:5000", cfg.ConfigServer.URL)
	assert.Equal(t, "flag-token", cfg.ConfigServer.Token)
	assert.Equal(t, "flag-secret", cfg.App.SecretKey)
	assert.Equal(t, "/etc/jrebel/config.json", cfg.JSONFilePath)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), []string{"-c", "config.json"})

	assert.Equal(t, "config.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgsLeavesZeroValues(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), nil)

	assert.Equal(t, &StructuredConfig{}, cfg)
}
