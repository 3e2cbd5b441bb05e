package config

import "errors"

// Validation errors returned by the per-binary config views when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend client settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid credential store settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid token settings required by
	// the devserver (for example, missing sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid devserver settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
