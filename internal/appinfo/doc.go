// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package appinfo exposes the build metadata of the running application
// (display name, version and its numeric components, build number, build
// date and commit) as a lazily loaded, immutable, process-wide value.
//
// Typical use:
//
//	_ = appinfo.Configure(appinfo.Sources{
//	    Bundle: metadata.Chain(metadata.BundleFile("Info.yaml"), metadata.Linker()),
//	    Commit: metadata.CommitFile("commit.yaml"),
//	    Logger: log,
//	})
//	log.Info().Msg(appinfo.Shared().String())
//
// Reading metadata never fails. Missing values degrade to empty strings, a
// zero version and the Unix epoch so that diagnostics screens and log headers
// keep working in incomplete builds.
package appinfo
