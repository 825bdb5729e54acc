// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kenger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/jrebel-license-server/internal/config"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryConfig() config.Registry {
	return config.Registry{
		Host:              "10.0.0.5",
		Port:              "58080",
		Namespace:         "jrebel",
		Weight:            100,
		HealthPath:        "/api/status",
		HeartbeatInterval: 10,
	}
}

func TestInitServiceRegistry(t *testing.T) {
	client, err := NewClient("http://config.internal:5000", "token", time.Second)
	require.NoError(t, err)

	t.Run("constructed when client and host and port are present", func(t *testing.T) {
		registry := InitServiceRegistry(client, registryConfig(), logger.Nop())

		require.NotNil(t, registry)
		assert.Equal(t, Descriptor{
			Namespace:         "jrebel",
			Host:              "10.0.0.5",
			Port:              "58080",
			Weight:            100,
			HealthPath:        "/api/status",
			HeartbeatInterval: 10 * time.Second,
		}, registry.Descriptor())
	})

	t.Run("nil without a platform client", func(t *testing.T) {
		assert.Nil(t, InitServiceRegistry(nil, registryConfig(), logger.Nop()))
	})

	t.Run("nil without a host", func(t *testing.T) {
		cfg := registryConfig()
		cfg.Host = ""

		assert.Nil(t, InitServiceRegistry(client, cfg, logger.Nop()))
	})

	t.Run("nil without a port", func(t *testing.T) {
		cfg := registryConfig()
		cfg.Port = ""

		assert.Nil(t, InitServiceRegistry(client, cfg, logger.Nop()))
	})
}

func TestNewServiceRegistry_AppliesDefaults(t *testing.T) {
	client, err := NewClient("http://config.internal:5000", "token", time.Second)
	require.NoError(t, err)

	registry := NewServiceRegistry(client, Descriptor{Host: "10.0.0.5", Port: "58080"}, logger.Nop())

	assert.Equal(t, Descriptor{
		Namespace:         "jrebel",
		Host:              "10.0.0.5",
		Port:              "58080",
		Weight:            100,
		HealthPath:        "/api/status",
		HeartbeatInterval: 10 * time.Second,
	}, registry.Descriptor())
}

func TestServiceRegistry_RegisterPayload(t *testing.T) {
	// Arrange
	var got registrationPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/registry/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "token", time.Second)
	require.NoError(t, err)
	registry := InitServiceRegistry(client, registryConfig(), logger.Nop())
	require.NotNil(t, registry)

	// Act
	err = registry.register(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "jrebel", got.Namespace)
	assert.Equal(t, "10.0.0.5", got.Host)
	assert.Equal(t, "58080", got.Port)
	assert.Equal(t, 100, got.Weight)
	assert.Equal(t, "/api/status", got.HealthPath)
	assert.Equal(t, 10, got.HeartbeatSeconds)
}

func TestServiceRegistry_HeartbeatError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "token", time.Second)
	require.NoError(t, err)
	registry := InitServiceRegistry(client, registryConfig(), logger.Nop())
	require.NotNil(t, registry)

	assert.Error(t, registry.heartbeat(context.Background()))
}

func TestServiceRegistry_StartHeartbeatsUntilStopped(t *testing.T) {
	// Arrange
	var heartbeats atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/registry/heartbeat" {
			heartbeats.Add(1)
		}
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "token", time.Second)
	require.NoError(t, err)

	registry := NewServiceRegistry(client, Descriptor{
		Host:              "10.0.0.5",
		Port:              "58080",
		HeartbeatInterval: 10 * time.Millisecond,
	}, logger.Nop())

	// Act
	registry.Start(context.Background())

	// Assert
	assert.Eventually(t, func() bool {
		return heartbeats.Load() >= 2
	}, 3*time.Second, 10*time.Millisecond)

	registry.Stop()
}
