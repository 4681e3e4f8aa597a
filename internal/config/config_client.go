package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// .env file and the environment.
//
// Server-side settings are ignored; only the ADAPTER_* group is read. The
// command-line client applies its own flags on top of the returned value.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().withDotEnv()
	if b.err != nil {
		return nil, fmt.Errorf("error get client config: %w", b.err)
	}

	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.Validate()
}

// Validate reports [ErrInvalidAdapterConfigs] when the address or timeout is
// missing.
func (cfg *ClientConfig) Validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
