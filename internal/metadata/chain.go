// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metadata

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type chain struct {
	providers []Provider
}

// Chain combines providers in priority order: for every key the first
// provider returning a non-empty value wins. Nil providers are skipped.
//
// Errors from individual providers do not stop the chain; they are joined
// and returned alongside the merged values.
func Chain(providers ...Provider) Provider {
	filtered := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			filtered = append(filtered, p)
		}
	}
	return &chain{providers: filtered}
}

// Metadata implements [Provider].
func (c *chain) Metadata() (Metadata, error) {
	merged := Metadata{}
	var errs error

	for i, p := range c.providers {
		m, err := p.Metadata()
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("provider %d: %w", i, err))
		}
		if len(m) == 0 {
			continue
		}

		// without WithOverride mergo only fills keys still missing in merged
		if err = mergo.Merge(&merged, m.withoutEmpty()); err != nil {
			errs = errors.Join(errs, fmt.Errorf("merge provider %d: %w", i, err))
		}
	}

	return merged, errs
}
