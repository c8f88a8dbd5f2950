package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid remote API settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an unresolvable state directory or empty cache DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
