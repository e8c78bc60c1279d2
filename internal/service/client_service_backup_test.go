package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var backupNow = time.Date(2026, 3, 2, 12, 30, 15, 0, time.UTC)

func newTestBackupSvc(t *testing.T, ctrl *gomock.Controller) (*clientBackupService, *mock.MockRemoteDataService) {
	t.Helper()
	remote := mock.NewMockRemoteDataService(ctrl)
	svc := NewClientBackupService(remote, "backups", func() time.Time { return backupNow }, logger.Nop()).(*clientBackupService)
	return svc, remote
}

// ── Snapshot ────────────────────────────────────────────────────────────────

func TestClientBackupService_Snapshot_GuardSkipsRecentBackup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote := newTestBackupSvc(t, ctrl)
	ctx := context.Background()

	last := backupNow.Add(-10 * time.Hour)
	remote.EXPECT().List(ctx, "backups", "a@x.com/").Return([]models.BlobObject{{Name: "notes-old.json", CreatedAt: last}}, nil)

	result, err := svc.Snapshot(ctx, "a@x.com")

	require.NoError(t, err)
	assert.True(t, result.Skipped())
	assert.Equal(t, last, result.LastBackupAt)
}

func TestClientBackupService_Snapshot_UploadsWhenBackupIsOld(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote := newTestBackupSvc(t, ctrl)
	ctx := context.Background()

	notes := []models.Note{{ID: 1, Title: "T"}, {ID: 2, Trashed: true}}
	gomock.InOrder(
		remote.EXPECT().List(ctx, "backups", "a@x.com/").Return([]models.BlobObject{
			{Name: "older.json", CreatedAt: backupNow.Add(-50 * time.Hour)},
			{Name: "newest.json", CreatedAt: backupNow.Add(-25 * time.Hour)},
		}, nil),
		remote.EXPECT().SelectNotes(ctx, models.AllNotesFilter("a@x.com")).Return(notes, nil),
		remote.EXPECT().Upload(ctx, "backups", "a@x.com/notes-20260302123015.json", "application/json", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, _ string, content []byte) error {
				var decoded []models.Note
				require.NoError(t, json.Unmarshal(content, &decoded))
				assert.Len(t, decoded, 2)
				assert.Contains(t, string(content), "\n  ", "snapshot is indented")
				return nil
			}),
	)

	result, err := svc.Snapshot(ctx, "a@x.com")

	require.NoError(t, err)
	assert.True(t, result.Uploaded)
	assert.Equal(t, "a@x.com/notes-20260302123015.json", result.Path)
	assert.Equal(t, 2, result.Notes)
	assert.Equal(t, backupNow.Add(-25*time.Hour), result.LastBackupAt)
}

func TestClientBackupService_Snapshot_FirstBackup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote := newTestBackupSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().List(ctx, "backups", "a@x.com/").Return(nil, nil)
	remote.EXPECT().SelectNotes(ctx, gomock.Any()).Return([]models.Note{}, nil)
	remote.EXPECT().Upload(ctx, "backups", gomock.Any(), "application/json", []byte("[]")).Return(nil)

	result, err := svc.Snapshot(ctx, "a@x.com")

	require.NoError(t, err)
	assert.True(t, result.Uploaded)
	assert.True(t, result.LastBackupAt.IsZero())
}

func TestClientBackupService_Snapshot_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("no user", func(t *testing.T) {
		svc, _ := newTestBackupSvc(t, gomock.NewController(t))
		_, err := svc.Snapshot(ctx, "")
		assert.ErrorIs(t, err, ErrNoActiveUser)
	})

	t.Run("listing fails", func(t *testing.T) {
		svc, remote := newTestBackupSvc(t, gomock.NewController(t))
		remote.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(nil, adapter.ErrForbidden)

		_, err := svc.Snapshot(ctx, "a@x.com")
		assert.ErrorIs(t, err, adapter.ErrForbidden)
	})

	t.Run("upload fails", func(t *testing.T) {
		svc, remote := newTestBackupSvc(t, gomock.NewController(t))
		remote.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		remote.EXPECT().SelectNotes(ctx, gomock.Any()).Return(nil, nil)
		remote.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.ErrConflict)

		result, err := svc.Snapshot(ctx, "a@x.com")
		assert.ErrorIs(t, err, adapter.ErrConflict)
		assert.False(t, result.Uploaded)
	})
}

// ── Export ──────────────────────────────────────────────────────────────────

func TestClientBackupService_Export_WritesNewestBackup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote := newTestBackupSvc(t, ctrl)
	ctx := context.Background()
	dir := t.TempDir()

	gomock.InOrder(
		remote.EXPECT().List(ctx, "backups", "a@x.com/").Return([]models.BlobObject{
			{Name: "notes-1.json", CreatedAt: backupNow.Add(-48 * time.Hour)},
			{Name: "notes-2.json", CreatedAt: backupNow.Add(-time.Hour)},
		}, nil),
		remote.EXPECT().SignedURL(ctx, "backups", "a@x.com/notes-2.json", 60*time.Second).Return("https://signed/url", nil),
		remote.EXPECT().Fetch(ctx, "https://signed/url").Return([]byte(`[{"id":1}]`), nil),
	)

	result := svc.Export(ctx, "a@x.com", dir)

	require.True(t, result.OK(), result.Message)
	assert.Equal(t, filepath.Join(dir, "notes-backup-2026-03-02.json"), result.Path)
	assert.Equal(t, "a@x.com/notes-2.json", result.Backup)

	content, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(content))
}

func TestClientBackupService_Export_Failures(t *testing.T) {
	ctx := context.Background()
	backups := []models.BlobObject{{Name: "notes-1.json", CreatedAt: backupNow}}

	tests := []struct {
		name  string
		dir   func(t *testing.T) string
		setup func(remote *mock.MockRemoteDataService)
		want  models.ExportFailure
	}{
		{
			name: "no backups",
			setup: func(remote *mock.MockRemoteDataService) {
				remote.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return([]models.BlobObject{}, nil)
			},
			want: models.ExportNoBackups,
		},
		{
			name: "listing error",
			setup: func(remote *mock.MockRemoteDataService) {
				remote.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(nil, adapter.ErrBadGateway)
			},
			want: models.ExportListFailed,
		},
		{
			name: "signed url error",
			setup: func(remote *mock.MockRemoteDataService) {
				remote.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(backups, nil)
				remote.EXPECT().SignedURL(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("", adapter.ErrNotFound)
			},
			want: models.ExportSignFailed,
		},
		{
			name: "fetch failure",
			setup: func(remote *mock.MockRemoteDataService) {
				remote.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(backups, nil)
				remote.EXPECT().SignedURL(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("https://signed", nil)
				remote.EXPECT().Fetch(ctx, "https://signed").Return(nil, errors.New("connection reset"))
			},
			want: models.ExportFetchFailed,
		},
		{
			name: "save failure",
			dir: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing", "dir")
			},
			setup: func(remote *mock.MockRemoteDataService) {
				remote.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(backups, nil)
				remote.EXPECT().SignedURL(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("https://signed", nil)
				remote.EXPECT().Fetch(ctx, "https://signed").Return([]byte("[]"), nil)
			},
			want: models.ExportSaveFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, remote := newTestBackupSvc(t, gomock.NewController(t))
			tt.setup(remote)

			dir := t.TempDir()
			if tt.dir != nil {
				dir = tt.dir(t)
			}

			result := svc.Export(ctx, "a@x.com", dir)

			assert.False(t, result.OK())
			assert.Equal(t, tt.want, result.Failure)
			assert.NotEmpty(t, result.Message)
			assert.Empty(t, result.Path)
		})
	}
}
