// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// colisops. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters shared by the console (claim decode)
	// and the devserver (token issuance).
	App App `envPrefix:"APP_"`

	// Adapter holds outbound transport settings used by the console
	// when talking to the logistics backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds client-side persistence settings (the credential
	// store file).
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds inbound settings for the devserver binary.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds token lifecycle settings.
type App struct {
	// TokenSignKey is the secret key used by the devserver to sign
	// JWT tokens. The console never verifies signatures; it only
	// decodes claims.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token remains valid
	// (e.g. "8h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Adapter holds outbound transport settings for the backend client.
type Adapter struct {
	// BaseURL is the backend API root (e.g. "http://localhost:8080").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the fixed overall timeout applied to every
	// outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds client-side persistence settings.
type Storage struct {
	// CredentialsPath is the path of the credential store file holding
	// the bearer token and the cached user profile. ":memory:" keeps
	// credentials in process memory only.
	// Env: STORAGE_CREDENTIALS_PATH
	CredentialsPath string `env:"CREDENTIALS_PATH"`
}

// Server holds inbound settings for the devserver.
type Server struct {
	// HTTPAddress is the TCP address the devserver listens on,
	// in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any
// source fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
