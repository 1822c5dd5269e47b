package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidConfigs indicates that a field failed its `validate` tag
	// (for example, an unknown driver name or a malformed URL).
	ErrInvalidConfigs = errors.New("invalid configuration")
	// ErrInvalidStorageConfigs indicates that the selected storage driver
	// is missing a required setting (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates that the selected adapter driver
	// is missing a required setting (for example, the processor URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid inbound transport settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
