package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

type Services struct {
	MaintenanceService MaintenanceService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	maintenance, err := NewMaintenanceService(storages.NotesMaintenanceRepository, cfg.TrashRetention, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		MaintenanceService: maintenance,
		AppInfoService:     appInfo,
	}, nil
}
