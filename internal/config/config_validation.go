// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madi Zhakenov

package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 15 * time.Second
	defaultTokenIssuer     = "goal-keeper"
	defaultTokenDuration   = 24 * time.Hour
	defaultRefreshInterval = 30 * time.Second
)

// applyDefaults fills in values that no configuration source provided.
// Secrets and DSNs never get defaults; those stay subject to validation.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://" + defaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
}

// validate checks the final merged [StructuredConfig]. The shared view stays
// permissive: the client never needs a token sign key, so server-only
// requirements are enforced where the value is consumed.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
