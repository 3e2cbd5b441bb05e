package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port] (devserver)
//	-b backend base URL (console)
//	-creds credential store file path (console)
//	-c/-config json file path with configs
//	-token-sign-key token signing key (devserver)
//	-token-issuer token issuer name (devserver)
//	-token-duration token duration (e.g., "8h", "30m")
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var baseURL string
	var credentialsPath string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "devserver address host:port")
	flag.StringVar(&baseURL, "b", "", "backend base URL")
	flag.StringVar(&credentialsPath, "creds", "", "credential store file path")
	flag.StringVar(&jsonConfigPath, "c", "", "json config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "json config file path")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "token issuer name")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "token validity duration")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "request timeout")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			CredentialsPath: credentialsPath,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
