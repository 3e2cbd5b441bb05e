package config

import (
	"fmt"
	"time"
)

// DevServerConfig is the devserver-specific configuration view
// assembled from [StructuredConfig].
type DevServerConfig struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// TokenSignKey signs issued JWT tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration
}

// GetDevServerConfig builds and validates a devserver-specific config
// view from the merged structured configuration, applying development
// defaults where a source supplied nothing.
func GetDevServerConfig() (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	srvCfg := &DevServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenIssuer:    cfg.App.TokenIssuer,
		TokenDuration:  cfg.App.TokenDuration,
	}

	if srvCfg.HTTPAddress == "" {
		srvCfg.HTTPAddress = "localhost:8080"
	}
	if srvCfg.RequestTimeout <= 0 {
		srvCfg.RequestTimeout = 30 * time.Second
	}
	if srvCfg.TokenSignKey == "" {
		srvCfg.TokenSignKey = "dev-only-sign-key"
	}
	if srvCfg.TokenIssuer == "" {
		srvCfg.TokenIssuer = "colisops-devserver"
	}
	if srvCfg.TokenDuration <= 0 {
		srvCfg.TokenDuration = 8 * time.Hour
	}

	return srvCfg, srvCfg.validate()
}

func (cfg *DevServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
