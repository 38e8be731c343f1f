// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madi Zhakenov

package config

// ClientConfig is the client-side view of the configuration: the outbound
// transport, the local cache, and the background workers.
type ClientConfig struct {
	Adapter Adapter
	Storage ClientStorage
	Workers Workers
}

// ClientStorage groups the client's persistence settings.
type ClientStorage struct {
	DB ClientDB
}

// GetClientConfig loads the shared configuration and narrows it down to the
// parts the client needs.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Storage: ClientStorage{DB: cfg.Storage.ClientDB},
		Workers: cfg.Workers,
	}
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
