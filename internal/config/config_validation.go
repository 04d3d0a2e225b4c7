// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
