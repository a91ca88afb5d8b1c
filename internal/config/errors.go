package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or record directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCryptoConfigs indicates unknown or too weak key-derivation
	// parameters.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidTimeoutConfigs indicates a negative timeout.
	ErrInvalidTimeoutConfigs = errors.New("invalid timeout configuration")
)
