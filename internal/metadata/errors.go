// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metadata

import "errors"

// ErrNotMapping is returned when a metadata file's top-level value is not a
// key/value mapping.
var ErrNotMapping = errors.New("metadata file is not a mapping")
