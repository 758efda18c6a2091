// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to a remote instance that
// publishes its build metadata.
//
// The primary abstraction is [RemoteAdapter], which decouples the commands
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-app-info/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter reads the build metadata published by a remote instance.
type RemoteAdapter interface {
	// GetVersion returns the plain version string served by GET /api/version/.
	GetVersion(ctx context.Context) (string, error)

	// GetInfo returns the full metadata record served by GET /api/info.
	GetInfo(ctx context.Context) (models.AppInfoResponse, error)
}
