// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Fields are mapped via their `env` and `envPrefix` tags.
// Unset variables leave fields zero so later sources and defaults can fill
// them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
