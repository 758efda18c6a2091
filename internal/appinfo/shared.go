// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appinfo

import (
	"sync"

	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/metadata"
)

// Sources tells the shared instance where to read its metadata from.
type Sources struct {
	// Bundle supplies name, version, build and date.
	Bundle metadata.Provider

	// Commit supplies the commit identifier. It is read separately because
	// the commit is usually written by a build step into its own record.
	Commit metadata.Provider

	// Logger receives warnings about unreadable sources. Nil discards them.
	Logger *logger.Logger
}

// DefaultSources reads linker-injected variables first and falls back to
// the build info the Go toolchain embeds into the binary.
func DefaultSources() Sources {
	return Sources{
		Bundle: metadata.Chain(metadata.Linker(), metadata.BuildInfo()),
		Commit: metadata.Chain(metadata.Linker(), metadata.BuildInfo()),
	}
}

var (
	mu      sync.Mutex
	once    sync.Once
	sources = DefaultSources()
	shared  *Info
)

// Configure installs the sources used when the shared instance is first
// loaded. It returns [ErrAlreadyLoaded] once [Shared] has been called, since
// the instance never changes after that.
func Configure(s Sources) error {
	mu.Lock()
	defer mu.Unlock()

	if shared != nil {
		return ErrAlreadyLoaded
	}
	sources = s
	return nil
}

// Shared returns the process-wide build metadata. The first call reads the
// configured sources exactly once, even under concurrent first access; every
// call returns the identical pointer.
func Shared() *Info {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		shared = load(sources)
	})
	return shared
}
