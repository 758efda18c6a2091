// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli wires configuration, build metadata, storage, services and
// transports into the appinfo command tree.
//
// Every command shares the persistent flags registered by
// [config.BindFlags]. Before a command runs, the configuration is loaded
// (file < environment < flags), the logger is created and the process-wide
// build metadata is loaded and logged as a startup header.
package cli
