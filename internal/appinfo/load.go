// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appinfo

import (
	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/metadata"
)

// load reads s and derives a fresh Info. It never fails: a source that
// cannot be read is logged at warn level and the values it would have
// supplied fall back to their defaults.
func load(s Sources) *Info {
	log := s.Logger
	if log == nil {
		log = logger.Nop()
	}

	bundle := read(s.Bundle, "bundle", log)
	commit := read(s.Commit, "commit", log)

	info := newInfo(bundle, commit)
	log.Debug().Object("app", info).Msg("build metadata loaded")

	return info
}

// read never propagates a panic from p: the source then counts as empty, so
// the shared instance is still constructed.
func read(p metadata.Provider, source string, log *logger.Logger) (m metadata.Metadata) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("source", source).Msg("build metadata provider panicked")
			m = metadata.Metadata{}
		}
	}()

	if p == nil {
		log.Warn().Str("source", source).Msg("no metadata provider configured")
		return metadata.Metadata{}
	}

	m, err := p.Metadata()
	if err != nil {
		log.Warn().Err(err).Str("source", source).Msg("build metadata partially unavailable")
	}
	if m == nil {
		m = metadata.Metadata{}
	}
	return m
}
