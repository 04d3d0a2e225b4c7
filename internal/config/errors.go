package config

import "errors"

// Validation errors returned when a merged configuration is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid console adapter settings
	// (for example, missing API address or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid API server listen settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, unknown driver or empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
