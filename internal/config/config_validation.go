// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the invariants shared by every binary: the configured
// key-derivation parameters must be strong enough for new records.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Crypto.KDFParams().CheckStrength(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCryptoConfigs, err)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidTimeoutConfigs)
	}

	return nil
}

// validateServer checks what the HTTP server needs on top of [validate].
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *CLIConfig) validate() error {
	if cfg.RecordDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
