// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"testing"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMySQL_RemoteObject(t *testing.T) {
	remote := &fakeRemote{values: map[string]string{
		mysqlConfigKey: `{"host":"db.internal","port":3306,"db":"jrebel","user":"app","password":"s3cret"}`,
	}}
	r := NewResolver(remote, logger.Nop())

	got := r.ResolveMySQL(context.Background(), MySQLEnv{})

	require.NotNil(t, got)
	assert.Equal(t, &MySQLConfig{Host: "db.internal", Port: 3306, DB: "jrebel", User: "app", Password: "s3cret"}, got)
}

func TestResolveMySQL_RemoteStringEncodedObject(t *testing.T) {
	// the value may arrive double-encoded: a JSON string holding the object
	remote := &fakeRemote{values: map[string]string{
		mysqlConfigKey: `"{\"host\":\"db.internal\",\"port\":\"3307\",\"db\":\"jrebel\",\"user\":\"app\",\"password\":\"s3cret\"}"`,
	}}
	r := NewResolver(remote, logger.Nop())

	got := r.ResolveMySQL(context.Background(), MySQLEnv{})

	require.NotNil(t, got)
	assert.Equal(t, 3307, got.Port)
	assert.Equal(t, "db.internal", got.Host)
}

func TestResolveMySQL_MalformedRemoteFallsThroughToEnv(t *testing.T) {
	remote := &fakeRemote{values: map[string]string{mysqlConfigKey: `"not an object"`}}
	r := NewResolver(remote, logger.Nop())
	envCfg := MySQLEnv{Host: "localhost", Port: "3306", DB: "jrebel", User: "root", Password: "root"}

	got := r.ResolveMySQL(context.Background(), envCfg)

	require.NotNil(t, got)
	assert.Equal(t, &MySQLConfig{Host: "localhost", Port: 3306, DB: "jrebel", User: "root", Password: "root"}, got)
}

func TestResolveMySQL_EnvComplete(t *testing.T) {
	r := NewResolver(nil, logger.Nop())
	envCfg := MySQLEnv{Host: "localhost", Port: "3306", DB: "jrebel", User: "root", Password: "root"}

	got := r.ResolveMySQL(context.Background(), envCfg)

	require.NotNil(t, got)
	assert.Equal(t, "root:root@tcp(localhost:3306)/jrebel?parseTime=true", got.DSN())
}

func TestResolveMySQL_PartialEnvResolvesToNil(t *testing.T) {
	tests := []struct {
		name   string
		envCfg MySQLEnv
	}{
		{"all unset", MySQLEnv{}},
		{"empty password", MySQLEnv{Host: "localhost", Port: "3306", DB: "jrebel", User: "root"}},
		{"missing host", MySQLEnv{Port: "3306", DB: "jrebel", User: "root", Password: "root"}},
		{"non-numeric port", MySQLEnv{Host: "localhost", Port: "not-a-port", DB: "jrebel", User: "root", Password: "root"}},
	}

	r := NewResolver(nil, logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, r.ResolveMySQL(context.Background(), tt.envCfg))
		})
	}
}

func TestMySQLConfigDSN(t *testing.T) {
	cfg := &MySQLConfig{Host: "db.internal", Port: 3307, DB: "licenses", User: "app", Password: "p@ss"}

	assert.Equal(t, "app:p@ss@tcp(db.internal:3307)/licenses?parseTime=true", cfg.DSN())
}
