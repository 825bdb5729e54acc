// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kenger

import "errors"

var (
	// ErrEmptyBaseURL is returned by [NewClient] when no base URL is
	// configured.
	ErrEmptyBaseURL = errors.New("config server base url is empty")
	// ErrInvalidBaseURL is returned by [NewClient] when the base URL
	// cannot be parsed as an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("config server base url is invalid")
)
