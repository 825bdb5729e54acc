// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package kenger is the client for the Kenger platform services: the
// remote configuration service and the service registry.
//
// Both collaborators are optional. A construction failure is reported to
// the caller, who is expected to continue in degraded mode rather than
// abort startup.
package kenger
