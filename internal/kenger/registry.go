// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kenger

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/jrebel-license-server/internal/config"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
)

// Registration defaults applied when the environment leaves the optional
// descriptor fields unset.
const (
	defaultNamespace         = "jrebel"
	defaultWeight            = 100
	defaultHealthPath        = "/api/status"
	defaultHeartbeatInterval = 10 * time.Second
)

// Descriptor is the registration record announced to the service
// registry. It is immutable once the registry is constructed.
type Descriptor struct {
	Namespace  string `json:"namespace"`
	Host       string `json:"host"`
	Port       string `json:"port"`
	Weight     int    `json:"weight"`
	HealthPath string `json:"health_path"`

	// HeartbeatInterval is the period between liveness announcements.
	// Serialized in seconds on the wire.
	HeartbeatInterval time.Duration `json:"-"`
}

// wire shape of Descriptor: the registry expects the interval in seconds.
type registrationPayload struct {
	Descriptor
	HeartbeatSeconds int `json:"heartbeat_interval"`
}

// ServiceRegistry announces one instance to the discovery service and
// keeps it alive with periodic heartbeats on a background goroutine.
type ServiceRegistry struct {
	client     *Client
	descriptor Descriptor
	logger     *logger.Logger

	stop chan struct{}
	done chan struct{}
}

// NewServiceRegistry constructs a ServiceRegistry for descriptor,
// filling unset optional fields with the registration defaults.
func NewServiceRegistry(client *Client, descriptor Descriptor, log *logger.Logger) *ServiceRegistry {
	if descriptor.Namespace == "" {
		descriptor.Namespace = defaultNamespace
	}
	if descriptor.Weight <= 0 {
		descriptor.Weight = defaultWeight
	}
	if descriptor.HealthPath == "" {
		descriptor.HealthPath = defaultHealthPath
	}
	if descriptor.HeartbeatInterval <= 0 {
		descriptor.HeartbeatInterval = defaultHeartbeatInterval
	}

	return &ServiceRegistry{
		client:     client,
		descriptor: descriptor,
		logger:     log,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// InitServiceRegistry builds a ServiceRegistry from the registry
// configuration, or nil when registration should be skipped.
//
// Preconditions, checked in order:
//  1. client must be non-nil (the platform client was constructed);
//  2. both the registry host and port must be configured.
//
// A nil result means the instance simply does not register; it is never
// an error.
func InitServiceRegistry(client *Client, cfg config.Registry, log *logger.Logger) *ServiceRegistry {
	if client == nil {
		log.Info().Msg("registry disabled: no platform client")
		return nil
	}

	if cfg.Host == "" || cfg.Port == "" {
		log.Info().Msg("registry disabled: host or port not configured")
		return nil
	}

	return NewServiceRegistry(client, Descriptor{
		Namespace:         cfg.Namespace,
		Host:              cfg.Host,
		Port:              cfg.Port,
		Weight:            cfg.Weight,
		HealthPath:        cfg.HealthPath,
		HeartbeatInterval: time.Duration(cfg.HeartbeatInterval) * time.Second,
	}, log)
}

// Descriptor returns a copy of the registration record.
func (s *ServiceRegistry) Descriptor() Descriptor {
	return s.descriptor
}

// Start registers the instance and launches the heartbeat goroutine.
// Registration failures are logged and heartbeating proceeds anyway; the
// registry treats a heartbeat from an unknown instance as a late
// registration.
func (s *ServiceRegistry) Start(ctx context.Context) {
	if err := s.register(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("service registration failed")
	} else {
		s.logger.Info().
			Str("namespace", s.descriptor.Namespace).
			Str("host", s.descriptor.Host).
			Str("port", s.descriptor.Port).
			Msg("registered with service registry")
	}

	go s.heartbeatLoop(ctx)
}

// Stop terminates the heartbeat goroutine and waits for it to exit.
func (s *ServiceRegistry) Stop() {
	close(s.stop)
	<-s.done
}

func (s *ServiceRegistry) heartbeatLoop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.descriptor.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.heartbeat(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("heartbeat failed")
			}
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *ServiceRegistry) register(ctx context.Context) error {
	return s.post(ctx, "/api/registry/register")
}

func (s *ServiceRegistry) heartbeat(ctx context.Context) error {
	return s.post(ctx, "/api/registry/heartbeat")
}

func (s *ServiceRegistry) post(ctx context.Context, path string) error {
	payload := registrationPayload{
		Descriptor:       s.descriptor,
		HeartbeatSeconds: int(s.descriptor.HeartbeatInterval / time.Second),
	}

	resp, err := s.client.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("post %s: unexpected status %d", path, resp.StatusCode())
	}

	return nil
}
