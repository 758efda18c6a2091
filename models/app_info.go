// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AppInfoResponse is the wire representation of the build metadata of a
// running application. It is returned by GET /api/info and decoded by the
// remote adapter.
type AppInfoResponse struct {
	// Name is the human-readable display name of the application.
	Name string `json:"name"`

	// Version is the full published version string (e.g. "2.3.1").
	Version string `json:"version"`

	// VersionMajor, VersionMinor and VersionRevision are parsed from Version.
	VersionMajor    int `json:"version_major"`
	VersionMinor    int `json:"version_minor"`
	VersionRevision int `json:"version_revision"`

	// Build is the internal build identifier.
	Build string `json:"build"`

	// Date is the build timestamp.
	Date time.Time `json:"date"`

	// Commit is the source-control revision the build was produced from.
	Commit string `json:"commit"`
}

// ParsedVersion returns the numeric version triple carried by the response.
func (r AppInfoResponse) ParsedVersion() Version {
	return Version{
		Major:    r.VersionMajor,
		Minor:    r.VersionMinor,
		Revision: r.VersionRevision,
	}
}
