package service

import (
	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	VersionService VersionService
}

// NewServices wires the services over info. storages may be nil for
// commands that never touch the settings database; VersionService is then
// left nil.
func NewServices(info BuildMetadata, storages *store.Storages, logger *logger.Logger, actions ...UpgradeAction) (*Services, error) {
	appInfoService, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	services := &Services{AppInfoService: appInfoService}
	if storages == nil {
		return services, nil
	}

	services.VersionService, err = NewVersionService(storages.SettingsRepository, info, logger, actions...)
	if err != nil {
		return nil, err
	}
	return services, nil
}
