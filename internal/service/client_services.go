package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/cache"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

type ClientServices struct {
	NoteService        NoteService
	BackupService      BackupService
	BackupJob          BackupJob
	SessionService     SessionService
	PreferencesService PreferencesService
}

// NewClientServices wires every client service around one session state.
func NewClientServices(
	localStorage store.LocalStorage,
	remote adapter.RemoteDataService,
	appState *state.AppState,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	noteCache := cache.New(localStorage, cfg.App.CacheTTL, logger)
	backupSvc := NewClientBackupService(remote, cfg.Remote.BackupsBucket, nil, logger)

	return &ClientServices{
		NoteService: NewClientNoteService(
			remote,
			noteCache,
			appState,
			validators.NewNoteValidator(),
			utils.NewObjectNamer(),
			cfg.Remote.ImagesBucket,
			logger,
		),
		BackupService:      backupSvc,
		BackupJob:          NewClientBackupJob(backupSvc, logger),
		SessionService:     NewClientSessionService(remote, localStorage, noteCache, appState, logger),
		PreferencesService: NewClientPreferencesService(localStorage, appState, logger),
	}
}
