package cli

import (
	"github.com/MKhiriev/go-app-info/internal/appinfo"
	"github.com/MKhiriev/go-app-info/internal/config"
	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/metadata"
)

// sourcesFrom orders the metadata sources for the shared instance: the
// configured files first, then linker variables and the embedded Go build
// info. The configured display name only beats the name derived from the
// module path.
func sourcesFrom(cfg config.App, log *logger.Logger) appinfo.Sources {
	var bundleFile, commitFile, name metadata.Provider
	if cfg.BundleFile != "" {
		bundleFile = metadata.BundleFile(cfg.BundleFile)
	}
	if cfg.CommitFile != "" {
		commitFile = metadata.CommitFile(cfg.CommitFile)
	}
	if cfg.Name != "" {
		name = metadata.Static(metadata.Metadata{metadata.KeyName: cfg.Name})
	}

	return appinfo.Sources{
		Bundle: metadata.Chain(bundleFile, metadata.Linker(), name, metadata.BuildInfo()),
		Commit: metadata.Chain(commitFile, metadata.Linker(), metadata.BuildInfo()),
		Logger: log,
	}
}

// loadShared configures the process-wide instance from cfg and returns it.
// When the instance was loaded earlier the configured sources are ignored.
func loadShared(cfg *config.StructuredConfig, log *logger.Logger) BuildInfo {
	if err := appinfo.Configure(sourcesFrom(cfg.App, log)); err != nil {
		log.Debug().Err(err).Msg("using already loaded build metadata")
	}
	return appinfo.Shared()
}
