// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metadata

import (
	"errors"
	"path"
	"runtime/debug"
)

// ErrNoBuildInfo is returned when the binary carries no embedded build info
// (e.g. built without module support).
var ErrNoBuildInfo = errors.New("build info is not available")

// develVersion is what the toolchain reports for the main module of a
// non-release build.
const develVersion = "(devel)"

// BuildInfo returns a [Provider] backed by the build info the Go toolchain
// embeds into every module-aware binary: main module version, vcs.revision
// and vcs.time. The last element of the main module path is used as name.
func BuildInfo() Provider {
	return buildInfoProvider{read: debug.ReadBuildInfo}
}

type buildInfoProvider struct {
	read func() (*debug.BuildInfo, bool)
}

// Metadata implements [Provider].
func (p buildInfoProvider) Metadata() (Metadata, error) {
	info, ok := p.read()
	if !ok || info == nil {
		return nil, ErrNoBuildInfo
	}

	m := Metadata{}
	if info.Main.Path != "" {
		m[KeyName] = path.Base(info.Main.Path)
	}
	if v := info.Main.Version; v != "" && v != develVersion {
		m[KeyVersion] = v
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			m[KeyCommit] = s.Value
		case "vcs.time":
			m[KeyDate] = s.Value
		}
	}

	return m, nil
}
