package config

import (
	"fmt"
	"time"
)

// ConsoleAdapter holds network settings used by the console transport
// layer.
type ConsoleAdapter struct {
	// BaseURL is the backend API root.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ConsoleStorage groups console persistence settings.
type ConsoleStorage struct {
	// CredentialsPath is the credential store file path.
	CredentialsPath string
}

// ConsoleConfig is the console-specific configuration view assembled
// from [StructuredConfig].
type ConsoleConfig struct {
	// Adapter contains outbound transport settings.
	Adapter ConsoleAdapter
	// Storage contains credential store settings.
	Storage ConsoleStorage
}

// GetConsoleConfig builds and validates a console-specific config view
// from the merged structured configuration, applying defaults where a
// source supplied nothing.
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	consoleCfg := &ConsoleConfig{
		Adapter: ConsoleAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ConsoleStorage{
			CredentialsPath: cfg.Storage.CredentialsPath,
		},
	}

	if consoleCfg.Adapter.BaseURL == "" {
		consoleCfg.Adapter.BaseURL = "http://localhost:8080"
	}
	if consoleCfg.Adapter.RequestTimeout <= 0 {
		consoleCfg.Adapter.RequestTimeout = 30 * time.Second
	}
	if consoleCfg.Storage.CredentialsPath == "" {
		consoleCfg.Storage.CredentialsPath = ".colisops/credentials.json"
	}

	return consoleCfg, consoleCfg.validate()
}

func (cfg *ConsoleConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.CredentialsPath == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
