package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type appInfoService struct {
	appVersion     string
	trashRetention time.Duration
	startedAt      time.Time
	now            func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:     cfg.Version,
		trashRetention: cfg.TrashRetention,
		startedAt:      time.Now(),
		now:            time.Now,
		logger:         logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Version:        s.appVersion,
		TrashRetention: s.trashRetention.String(),
		StartedAt:      s.startedAt.UTC().Format(time.RFC3339),
		Uptime:         s.now().Sub(s.startedAt).Truncate(time.Second).String(),
	}
}
