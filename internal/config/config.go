// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-app-info application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the locations of the build metadata sources.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the launch-tracking settings store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of a remote instance queried by the
	// "remote" command.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values loaded
	// from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App configures where build metadata is read from.
type App struct {
	// BundleFile is the path to a YAML/JSON bundle metadata file
	// (name, version, build, date). Optional.
	// Env: APP_BUNDLE_FILE
	BundleFile string `env:"BUNDLE_FILE"`

	// CommitFile is the path to the build-generated commit record. Optional.
	// Env: APP_COMMIT_FILE
	CommitFile string `env:"COMMIT_FILE"`

	// Name overrides the display name when no source provides one.
	// Env: APP_NAME
	Name string `env:"NAME"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the settings database.
type DB struct {
	// DSN selects the backend: "postgres://..." opens PostgreSQL, anything
	// else is treated as an SQLite file path (":memory:" allowed).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings for talking to a remote instance.
type Adapter struct {
	// HTTPAddress is the base address of the remote HTTP API
	// (e.g. "localhost:8080" or "https://info.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level emitted ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is where the terminal UI writes its log. Empty means a "logs"
	// file next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Load merges the JSON file named by the environment or the flags,
// environment variables and the values bound to command-line flags. For every
// field the last source with a non-zero value wins, so flags override the
// environment, which overrides the file.
//
// flags is the config produced by the function [BindFlags] returns, called
// after the flag set has been parsed; nil skips the flag layer.
func Load(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
