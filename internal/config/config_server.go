package config

import (
	"fmt"
	"os"
	"time"
)

// ServerConfig is the API server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Server  Server
	Storage Storage
}

var serverDefaults = StructuredConfig{
	Server: Server{
		HTTPAddress:    "localhost:8080",
		RequestTimeout: 30 * time.Second,
	},
	Storage: Storage{
		DB: DB{
			Driver: DriverSQLite,
			DSN:    "client-admin.db",
		},
	},
}

// GetServerConfig builds and validates the API server configuration from
// the process environment and command-line arguments.
func GetServerConfig() (*ServerConfig, error) {
	return loadServerConfig(os.Args[1:])
}

func loadServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(parseServerFlags, args).
		withJSON().
		withDefaults(&serverDefaults).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	return serverCfg, serverCfg.validate()
}
