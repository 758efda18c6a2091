// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metadata

// These variables are populated at build time via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/MKhiriev/go-app-info/internal/metadata.Version=1.2.3 \
//	  -X github.com/MKhiriev/go-app-info/internal/metadata.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/MKhiriev/go-app-info/internal/metadata.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Name    string
	Version string
	Build   string
	Date    string
	Commit  string
)

// Linker returns a [Provider] over the linker-injected variables. Values are
// read on every call, so the provider reflects the variables as they are when
// metadata is first requested.
func Linker() Provider {
	return ProviderFunc(func() (Metadata, error) {
		return Metadata{
			KeyName:    Name,
			KeyVersion: Version,
			KeyBuild:   Build,
			KeyDate:    Date,
			KeyCommit:  Commit,
		}, nil
	})
}
