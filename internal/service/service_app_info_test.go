package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.Nil(t, svc)
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	tests := []string{"3.1.4", "v1.2.3-beta+build.42"}

	for _, version := range tests {
		t.Run(version, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppInfo_ReportsRetentionAndUptime(t *testing.T) {
	started := time.Date(2026, 10, 18, 9, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	svc := &appInfoService{
		appVersion:     "1.4.0",
		trashRetention: 14 * 24 * time.Hour,
		startedAt:      started,
		now:            func() time.Time { return started.Add(90*time.Minute + 400*time.Millisecond) },
		logger:         logger.Nop(),
	}

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, models.AppInfo{
		Version:        "1.4.0",
		TrashRetention: "336h0m0s",
		StartedAt:      "2026-10-18T07:00:00Z",
		Uptime:         "1h30m0s",
	}, got)
}

func TestGetAppInfo_FromConstructor(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0", TrashRetention: time.Hour}, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, "1.0.0", got.Version)
	assert.Equal(t, "1h0m0s", got.TrashRetention)
	_, err = time.Parse(time.RFC3339, got.StartedAt)
	assert.NoError(t, err)
}
