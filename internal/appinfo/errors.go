// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appinfo

import "errors"

// ErrAlreadyLoaded is returned by [Configure] after the shared instance has
// been created.
var ErrAlreadyLoaded = errors.New("build metadata is already loaded")
