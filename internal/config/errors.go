package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrTokenSignKeyTooShort indicates that the token signing key carries
	// fewer than the required 32 bytes of key material.
	ErrTokenSignKeyTooShort = errors.New("token sign key must be at least 32 bytes")
	// ErrInvalidAuthConfigs indicates invalid auth settings
	// (for example, a non-positive token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
