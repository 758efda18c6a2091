package service

import (
	"context"

	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/models"
)

type appInfoService struct {
	info BuildMetadata

	logger *logger.Logger
}

func NewAppInfoService(info BuildMetadata, logger *logger.Logger) (AppInfoService, error) {
	if info == nil {
		return nil, ErrNoBuildMetadata
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

// GetAppVersion returns the full version string, empty when unknown.
func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version()
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfoResponse {
	return s.info.Response()
}
