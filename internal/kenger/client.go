// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

// Client talks to the Kenger platform over HTTP. All requests carry the
// configured bearer token.
type Client struct {
	http   *resty.Client
	config *ConfigAPI
}

// NewClient constructs a Client for the service at baseURL.
//
// Returns [ErrEmptyBaseURL] or [ErrInvalidBaseURL] when the base URL is
// unusable; the caller is expected to log the error and continue without
// the remote collaborators.
func NewClient(baseURL, token string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(token)

	c := &Client{http: cli}
	c.config = &ConfigAPI{client: c}

	return c, nil
}

// Config returns the remote configuration API of the platform.
func (c *Client) Config() *ConfigAPI {
	return c.config
}

// ConfigAPI reads values published by the remote configuration service.
type ConfigAPI struct {
	client *Client
}

// Get fetches the value stored under key.
//
// The second return value reports whether a value exists: a 404 response,
// an empty body, or a JSON null all read as "absent" without error. Any
// transport failure or non-2xx status is returned as an error; the caller
// decides whether to fall back or fail.
//
// The returned payload is always valid JSON. Services occasionally store
// bare strings without quoting; those are re-encoded as JSON strings so
// callers can unmarshal uniformly.
func (a *ConfigAPI) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	resp, err := a.client.http.R().
		SetContext(ctx).
		Get("/api/config/" + url.PathEscape(key))
	if err != nil {
		return nil, false, fmt.Errorf("get config %q: %w", key, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.IsError() {
		return nil, false, fmt.Errorf("get config %q: unexpected status %d", key, resp.StatusCode())
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, false, nil
	}

	if !json.Valid(body) {
		quoted, err := json.Marshal(string(body))
		if err != nil {
			return nil, false, fmt.Errorf("get config %q: encode raw value: %w", key, err)
		}
		return quoted, true, nil
	}

	return json.RawMessage(body), true, nil
}
