package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MaintenanceService runs the scheduled housekeeping of the notes backend.
type MaintenanceService interface {
	// PurgeOldTrash permanently deletes trashed notes whose last update is
	// older than the configured retention and returns how many were removed.
	PurgeOldTrash(ctx context.Context) (int64, error)

	// PingDatabase performs a minimal query to keep the database awake.
	PingDatabase(ctx context.Context) error
}

// AppInfoService exposes metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// GetAppInfo reports the version, the trash retention in force and how
	// long the process has been up.
	GetAppInfo(ctx context.Context) models.AppInfo
}
