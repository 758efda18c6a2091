// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// versionSeparator splits a published version string into its components.
const versionSeparator = "."

// Version is a numeric major.minor.revision triple parsed from a published
// version string such as "2.3.1".
type Version struct {
	Major    int `json:"major"`
	Minor    int `json:"minor"`
	Revision int `json:"revision"`
}

// ParseVersion splits s on "." and reads up to three numeric components.
//
// Parsing never fails: each component is read as its leading decimal digits,
// so "3-beta" yields 3, while an empty, missing or non-numeric component
// yields 0. A single leading "v" or "V" is ignored ("v1.2.3" is 1.2.3).
// Components after the third are ignored.
func ParseVersion(s string) Version {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "v"), "V")

	var components [3]int
	for i, part := range strings.SplitN(s, versionSeparator, len(components)+1) {
		if i == len(components) {
			break
		}
		components[i] = leadingInt(part)
	}

	return Version{
		Major:    components[0],
		Minor:    components[1],
		Revision: components[2],
	}
}

// leadingInt returns the integer value of the leading decimal digits of s,
// or 0 when s does not start with a digit or the value overflows int.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Compare returns -1 if v is older than other, 1 if it is newer and 0 when
// both denote the same version.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return sign(v.Major - other.Major)
	case v.Minor != other.Minor:
		return sign(v.Minor - other.Minor)
	default:
		return sign(v.Revision - other.Revision)
	}
}

// IsZero reports whether v is 0.0.0, which is how an unknown or never
// launched version is represented.
func (v Version) IsZero() bool {
	return v == Version{}
}

// String formats v as "major.minor.revision".
func (v Version) String() string {
	return strconv.Itoa(v.Major) + versionSeparator +
		strconv.Itoa(v.Minor) + versionSeparator +
		strconv.Itoa(v.Revision)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
