package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the console transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote API.
	HTTPAddress string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
}

// ClientConfig is the console configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the remote API address and timeout.
	Adapter ClientAdapter
	// LogFile is where the console writes its log.
	LogFile string
}

var clientDefaults = StructuredConfig{
	Adapter: Adapter{
		HTTPAddress:    "http://localhost:8080",
		RequestTimeout: 15 * time.Second,
	},
}

// GetClientConfig builds and validates the console configuration from the
// process environment and command-line arguments.
func GetClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(parseClientFlags, args).
		withJSON().
		withDefaults(&clientDefaults).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogFile: cfg.App.LogFile,
	}

	return clientCfg, clientCfg.validate()
}
