// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// BackupWorker keeps the periodic backup job bound to the signed-in user.
// Signing in starts the job for the new email, signing out stops it.
type BackupWorker struct {
	job      service.BackupJob
	appState *state.AppState
	interval time.Duration

	logger *logger.Logger
}

func NewBackupWorker(job service.BackupJob, appState *state.AppState, interval time.Duration, logger *logger.Logger) *BackupWorker {
	return &BackupWorker{
		job:      job,
		appState: appState,
		interval: interval,
		logger:   logger,
	}
}

func (w *BackupWorker) Run(ctx context.Context) {
	current := ""
	follow := func(session models.Session) {
		switch {
		case !session.Active():
			if current != "" {
				w.logger.Info().Str("func", "*BackupWorker.Run").Str("email", current).Msg("stopping backups")
				w.job.Stop()
				current = ""
			}
		case !strings.EqualFold(session.Email, current):
			current = session.Email
			w.logger.Info().Str("func", "*BackupWorker.Run").Str("email", current).Dur("interval", w.interval).Msg("starting backups")
			w.job.Start(ctx, current, w.interval)
		}
	}

	sessions := make(chan models.Session, 1)
	unsubscribe := w.appState.Session.Subscribe(func(s models.Session) {
		select {
		case sessions <- s:
		case <-ctx.Done():
		}
	})
	defer unsubscribe()

	follow(w.appState.Session.Get())
	for {
		select {
		case <-ctx.Done():
			w.job.Stop()
			return
		case s := <-sessions:
			follow(s)
		}
	}
}
