// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"encoding/json"
)

// remote key under which the config service publishes the accepted API
// token list.
const apiTokensKey = "api_tokens"

// ResolveAPITokens resolves the set of accepted API tokens.
//
// Shapes accepted from the remote source:
//   - a JSON list of strings — used as-is;
//   - a JSON string containing a JSON list — the inner list;
//   - a JSON string whose content is not valid JSON — a single literal
//     token;
//   - anything else — treated as absent.
//
// When the remote source yields nothing the result is a one-element
// list containing fallbackToken (the config service token).
func (r *Resolver) ResolveAPITokens(ctx context.Context, fallbackToken string) []string {
	raw, found := r.lookup(ctx, apiTokensKey)
	if !found {
		r.logger.Info().Str("source", "default").Msg("api tokens resolved")
		return []string{fallbackToken}
	}

	var tokens []string
	if err := json.Unmarshal(raw, &tokens); err == nil {
		r.logger.Info().Str("source", "remote").Int("count", len(tokens)).Msg("api tokens resolved")
		return tokens
	}

	var literal string
	if err := json.Unmarshal(raw, &literal); err == nil {
		if err := json.Unmarshal([]byte(literal), &tokens); err == nil {
			r.logger.Info().Str("source", "remote").Int("count", len(tokens)).Msg("api tokens resolved")
			return tokens
		}

		// valid JSON that is not a token list (a number, an object)
		// counts as absent, not as a token
		if json.Valid([]byte(literal)) {
			r.logger.Warn().Msg("remote api tokens value is not a token list, falling back")
			return []string{fallbackToken}
		}

		// not JSON at all: the whole string is a single token
		r.logger.Info().Str("source", "remote").Int("count", 1).Msg("api tokens resolved")
		return []string{literal}
	}

	r.logger.Warn().Msg("malformed remote api tokens value, falling back")
	return []string{fallbackToken}
}
