// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks invariants every command relies on. Command-specific
// requirements live in the Validate* methods below.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}
	return nil
}

// ValidateServe reports whether cfg can start at least one server.
func (cfg *StructuredConfig) ValidateServe() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}
	return nil
}

// ValidateRemote reports whether cfg names a remote instance.
func (cfg *StructuredConfig) ValidateRemote() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

// ValidateStorage reports whether cfg names a settings database.
func (cfg *StructuredConfig) ValidateStorage() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	return nil
}
