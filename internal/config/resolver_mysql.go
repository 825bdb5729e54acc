// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// remote key under which the config service publishes the database
// connection record.
const mysqlConfigKey = "mysql.config"

// MySQLConfig is a fully resolved database connection record. A nil
// *MySQLConfig means "no database configured"; a non-nil value always
// carries all five fields.
type MySQLConfig struct {
	Host     string
	Port     int
	DB       string
	User     string
	Password string
}

// DSN renders the record as a go-sql-driver/mysql data source name.
func (c *MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", c.User, c.Password, c.Host, c.Port, c.DB)
}

// mysqlRemoteRecord is the wire shape of the remote mysql.config value.
// The port arrives as either a JSON number or a numeric string depending
// on how the value was stored, hence flexInt.
type mysqlRemoteRecord struct {
	Host     string  `json:"host"`
	Port     flexInt `json:"port"`
	DB       string  `json:"db"`
	User     string  `json:"user"`
	Password string  `json:"password"`
}

// flexInt decodes a JSON number or a numeric JSON string.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port is not numeric: %w", err)
	}

	*f = flexInt(n)
	return nil
}

// ResolveMySQL resolves the database connection record.
//
// Precedence:
//  1. Remote key "mysql.config". The value may be a JSON object or a
//     JSON string containing one; a value that fails to parse is treated
//     as absent and the cascade continues.
//  2. The five MYSQL_* environment variables, accepted only when all
//     five are non-empty. Partial environment configuration resolves to
//     nil with a warning, never to a partially filled record.
func (r *Resolver) ResolveMySQL(ctx context.Context, envCfg MySQLEnv) *MySQLConfig {
	if cfg := r.resolveRemoteMySQL(ctx); cfg != nil {
		r.logger.Info().Str("source", "remote").Msg("mysql config resolved")
		return cfg
	}

	if cfg := resolveEnvMySQL(envCfg); cfg != nil {
		r.logger.Info().Str("source", "env").Msg("mysql config resolved")
		return cfg
	}

	r.logger.Warn().Msg("mysql config is incomplete: configure the remote config service or set MYSQL_HOST, MYSQL_PORT, MYSQL_DB, MYSQL_USER, MYSQL_PASSWORD")
	return nil
}

func (r *Resolver) resolveRemoteMySQL(ctx context.Context) *MySQLConfig {
	raw, found := r.lookup(ctx, mysqlConfigKey)
	if !found {
		return nil
	}

	// The value may be double-encoded: a JSON string whose content is
	// the JSON object.
	payload := []byte(raw)
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		payload = []byte(inner)
	}

	var record mysqlRemoteRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		r.logger.Warn().Err(err).Msg("malformed remote mysql config, falling back")
		return nil
	}

	return &MySQLConfig{
		Host:     record.Host,
		Port:     int(record.Port),
		DB:       record.DB,
		User:     record.User,
		Password: record.Password,
	}
}

func resolveEnvMySQL(envCfg MySQLEnv) *MySQLConfig {
	if envCfg.Host == "" || envCfg.Port == "" || envCfg.DB == "" || envCfg.User == "" || envCfg.Password == "" {
		return nil
	}

	port, err := strconv.Atoi(envCfg.Port)
	if err != nil {
		return nil
	}

	return &MySQLConfig{
		Host:     envCfg.Host,
		Port:     port,
		DB:       envCfg.DB,
		User:     envCfg.User,
		Password: envCfg.Password,
	}
}
