// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metadata reads raw build metadata from the places a packaged
// application can carry it: linker-injected variables, the Go build info
// embedded in the binary, a bundle metadata file shipped next to the
// executable and a build-generated commit record.
//
// Every source implements [Provider] and yields a flat [Metadata] map keyed
// by the canonical keys below. Providers only read; interpreting the values
// (version parsing, date fallbacks) is left to the appinfo package.
package metadata

//go:generate mockgen -source=provider.go -destination=../mock/metadata_provider_mock.go -package=mock

// Canonical metadata keys.
const (
	KeyName    = "name"
	KeyVersion = "version"
	KeyBuild   = "build"
	KeyDate    = "date"
	KeyCommit  = "commit"
)

// Metadata is a flat key/value view of build metadata.
type Metadata map[string]string

// Get returns the value stored under key, or "" when absent.
func (m Metadata) Get(key string) string {
	if m == nil {
		return ""
	}
	return m[key]
}

// withoutEmpty returns a copy of m without keys whose value is empty, so that
// an empty value never shadows a lower-priority provider.
func (m Metadata) withoutEmpty() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Provider is a read-only source of build metadata.
type Provider interface {
	// Metadata returns the values the source knows about. A provider that
	// fails may still return the values it managed to read.
	Metadata() (Metadata, error)
}

// ProviderFunc adapts an ordinary function to the [Provider] interface.
type ProviderFunc func() (Metadata, error)

// Metadata implements [Provider].
func (f ProviderFunc) Metadata() (Metadata, error) {
	return f()
}

// Static returns a [Provider] that always yields a copy of m.
func Static(m Metadata) Provider {
	return ProviderFunc(func() (Metadata, error) {
		out := make(Metadata, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	})
}
