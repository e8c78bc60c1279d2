// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	// BackupMaxAge is the minimum age of the newest snapshot before a new
	// one is written.
	BackupMaxAge = 24 * time.Hour

	// ExportURLExpiry is the lifetime of the signed download URL.
	ExportURLExpiry = 60 * time.Second

	snapshotTimeLayout = "20060102150405"
	exportDateLayout   = "2006-01-02"
)

type clientBackupService struct {
	remote        adapter.RemoteDataService
	backupsBucket string
	now           func() time.Time

	logger *logger.Logger
}

// NewClientBackupService returns a [BackupService] writing snapshots to
// backupsBucket. now may be nil to use the wall clock.
func NewClientBackupService(remote adapter.RemoteDataService, backupsBucket string, now func() time.Time, logger *logger.Logger) BackupService {
	if now == nil {
		now = time.Now
	}

	return &clientBackupService{
		remote:        remote,
		backupsBucket: backupsBucket,
		now:           now,
		logger:        logger,
	}
}

// Snapshot implements [BackupService]. The object path is
// <email>/notes-<UTC yyyymmddhhmmss>.json.
func (s *clientBackupService) Snapshot(ctx context.Context, email string) (models.BackupResult, error) {
	if strings.TrimSpace(email) == "" {
		return models.BackupResult{}, ErrNoActiveUser
	}

	objects, err := s.remote.List(ctx, s.backupsBucket, userFolder(email))
	if err != nil {
		return models.BackupResult{}, fmt.Errorf("list backups: %w", mapAdapterError(err))
	}

	now := s.now()
	result := models.BackupResult{}
	if newest, ok := newestObject(objects); ok {
		result.LastBackupAt = newest.CreatedAt
		if now.Sub(newest.CreatedAt) < BackupMaxAge {
			s.logger.Debug().Str("func", "*clientBackupService.Snapshot").
				Time("last_backup_at", newest.CreatedAt).Msg("recent backup exists, skipping")
			return result, nil
		}
	}

	notes, err := s.remote.SelectNotes(ctx, models.AllNotesFilter(email))
	if err != nil {
		return result, fmt.Errorf("select notes for backup: %w", mapAdapterError(err))
	}

	payload, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return result, fmt.Errorf("encode backup: %w", err)
	}

	path := userFolder(email) + "notes-" + now.UTC().Format(snapshotTimeLayout) + ".json"
	if err = s.remote.Upload(ctx, s.backupsBucket, path, "application/json", payload); err != nil {
		return result, fmt.Errorf("upload backup: %w", mapAdapterError(err))
	}

	s.logger.Info().Str("func", "*clientBackupService.Snapshot").Str("path", path).Int("notes", len(notes)).Msg("backup uploaded")

	result.Uploaded = true
	result.Path = path
	result.Notes = len(notes)
	return result, nil
}

// Export implements [BackupService]. The file is named
// notes-backup-<yyyy-mm-dd>.json after the local date of the export.
func (s *clientBackupService) Export(ctx context.Context, email, dir string) models.ExportResult {
	if strings.TrimSpace(email) == "" {
		return s.exportFailure(models.ExportListFailed, ErrNoActiveUser)
	}

	objects, err := s.remote.List(ctx, s.backupsBucket, userFolder(email))
	if err != nil {
		return s.exportFailure(models.ExportListFailed, mapAdapterError(err))
	}

	newest, ok := newestObject(objects)
	if !ok {
		return models.ExportResult{Failure: models.ExportNoBackups, Message: app.MsgNoBackupsFound}
	}

	objectPath := userFolder(email) + newest.Name
	url, err := s.remote.SignedURL(ctx, s.backupsBucket, objectPath, ExportURLExpiry)
	if err != nil {
		return s.exportFailure(models.ExportSignFailed, mapAdapterError(err))
	}

	content, err := s.remote.Fetch(ctx, url)
	if err != nil {
		return s.exportFailure(models.ExportFetchFailed, err)
	}

	target := filepath.Join(dir, "notes-backup-"+s.now().Format(exportDateLayout)+".json")
	if err = os.WriteFile(target, content, 0o600); err != nil {
		return s.exportFailure(models.ExportSaveFailed, err)
	}

	return models.ExportResult{Path: target, Backup: objectPath}
}

func (s *clientBackupService) exportFailure(kind models.ExportFailure, err error) models.ExportResult {
	s.logger.Err(err).Str("func", "*clientBackupService.Export").Str("failure", string(kind)).Send()
	return models.ExportResult{Failure: kind, Message: err.Error()}
}

func userFolder(email string) string {
	return email + "/"
}

// newestObject picks the object with the latest creation time. The listing
// is already sorted newest first but the order is not relied on.
func newestObject(objects []models.BlobObject) (models.BlobObject, bool) {
	if len(objects) == 0 {
		return models.BlobObject{}, false
	}

	newest := objects[0]
	for _, o := range objects[1:] {
		if o.CreatedAt.After(newest.CreatedAt) {
			newest = o
		}
	}
	return newest, true
}
