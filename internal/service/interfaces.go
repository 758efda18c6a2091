package service

import (
	"context"

	"github.com/MKhiriev/go-app-info/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BuildMetadata is the read-only view of the process build metadata the
// services depend on. *appinfo.Info satisfies it.
type BuildMetadata interface {
	Version() string
	ParsedVersion() models.Version
	Response() models.AppInfoResponse
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfoResponse
}

// VersionService tracks launches across process restarts: fresh installs,
// upgrades, one-time upgrade actions and release notes acknowledgement.
type VersionService interface {
	CheckLaunch(ctx context.Context) (models.LaunchState, error)
	MarkReleaseNotesViewed(ctx context.Context) error
}
