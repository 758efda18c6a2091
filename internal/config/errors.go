// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig] checks when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates that neither an HTTP nor a gRPC
	// address was configured for the serve command.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a missing remote instance address.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing settings database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrNegativeTimeout indicates a negative request timeout.
	ErrNegativeTimeout = errors.New("timeouts must not be negative")
)
