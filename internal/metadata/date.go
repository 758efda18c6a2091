// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metadata

import (
	"strconv"
	"strings"
	"time"
)

// Epoch returns the build date reported when none is known: the Unix
// epoch in UTC.
func Epoch() time.Time {
	return time.Unix(0, 0).UTC()
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate interprets a build timestamp. It accepts the layouts build
// scripts commonly emit and unix seconds. The result is in UTC; an empty or
// unrecognised value yields [Epoch].
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return Epoch()
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil && secs >= 0 {
		return time.Unix(secs, 0).UTC()
	}

	return Epoch()
}
