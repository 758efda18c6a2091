// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LaunchState describes how the current launch relates to the previously
// launched version of the application.
type LaunchState struct {
	// Previous is the version recorded by the last launch, 0.0.0 if none.
	Previous Version `json:"previous"`

	// Current is the version of the running build.
	Current Version `json:"current"`

	// FreshInstall is true when no previous launch was recorded.
	FreshInstall bool `json:"fresh_install"`

	// Upgraded is true when Current is newer than a recorded Previous.
	Upgraded bool `json:"upgraded"`

	// ReleaseNotesViewed is false until the user acknowledges the release
	// notes of the current version.
	ReleaseNotesViewed bool `json:"release_notes_viewed"`

	// RanActions lists the upgrade actions executed during this launch.
	RanActions []string `json:"ran_actions,omitempty"`
}
