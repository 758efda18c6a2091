// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appinfo

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-app-info/internal/metadata"
	"github.com/MKhiriev/go-app-info/models"
)

// Info is the build metadata of the running application.
//
// All fields are unexported and set once when the shared instance is loaded;
// there is no exported constructor, so the only populated Info a caller can
// obtain is the one returned by [Shared].
type Info struct {
	name    string
	version string
	parsed  models.Version
	build   string
	date    time.Time
	commit  string
}

// newInfo derives an Info from already merged bundle and commit metadata.
// Missing text values stay empty, a missing or unparsable date becomes
// [metadata.Epoch] and the version components default to 0.
func newInfo(bundle, commit metadata.Metadata) *Info {
	version := bundle.Get(metadata.KeyVersion)

	return &Info{
		name:    bundle.Get(metadata.KeyName),
		version: version,
		parsed:  models.ParseVersion(version),
		build:   bundle.Get(metadata.KeyBuild),
		date:    metadata.ParseDate(bundle.Get(metadata.KeyDate)),
		commit:  commit.Get(metadata.KeyCommit),
	}
}

// Name returns the human-readable display name of the application.
func (i *Info) Name() string { return i.name }

// Version returns the full published version string, e.g. "2.3.1".
func (i *Info) Version() string { return i.version }

// VersionMajor returns the major component of Version, 0 if absent.
func (i *Info) VersionMajor() int { return i.parsed.Major }

// VersionMinor returns the minor component of Version, 0 if absent.
func (i *Info) VersionMinor() int { return i.parsed.Minor }

// VersionRevision returns the revision component of Version, 0 if absent.
func (i *Info) VersionRevision() int { return i.parsed.Revision }

// ParsedVersion returns the three numeric version components together.
func (i *Info) ParsedVersion() models.Version { return i.parsed }

// Build returns the build identifier.
func (i *Info) Build() string { return i.build }

// Date returns the build timestamp, or the Unix epoch when unknown.
func (i *Info) Date() time.Time { return i.date }

// Commit returns the source-control revision the build was produced from.
func (i *Info) Commit() string { return i.commit }

// String returns a one-line summary suitable for log headers.
func (i *Info) String() string {
	return fmt.Sprintf("%s %s (build %s, commit %s, built %s)",
		i.name, i.version, i.build, i.commit, i.date.Format(time.RFC3339))
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (i *Info) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", i.name).
		Str("version", i.version).
		Str("build", i.build).
		Time("date", i.date).
		Str("commit", i.commit)
}

// Response converts i into its transport representation.
func (i *Info) Response() models.AppInfoResponse {
	return models.AppInfoResponse{
		Name:            i.name,
		Version:         i.version,
		VersionMajor:    i.parsed.Major,
		VersionMinor:    i.parsed.Minor,
		VersionRevision: i.parsed.Revision,
		Build:           i.build,
		Date:            i.date,
		Commit:          i.commit,
	}
}
