package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

type maintenanceService struct {
	repository store.NotesMaintenanceRepository
	retention  time.Duration
	now        func() time.Time

	logger *logger.Logger
}

// NewMaintenanceService returns a [MaintenanceService] purging trashed notes
// older than retention.
func NewMaintenanceService(repository store.NotesMaintenanceRepository, retention time.Duration, logger *logger.Logger) (MaintenanceService, error) {
	if retention <= 0 {
		return nil, ErrInvalidRetention
	}

	return &maintenanceService{
		repository: repository,
		retention:  retention,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *maintenanceService) PurgeOldTrash(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention)

	count, err := s.repository.PurgeTrashed(ctx, cutoff)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*maintenanceService.PurgeOldTrash").Msg("error purging trashed notes")
		return 0, err
	}

	logger.FromContext(ctx).Info().Str("func", "*maintenanceService.PurgeOldTrash").
		Time("cutoff", cutoff).Int64("count", count).Msg("old trashed notes purged")
	return count, nil
}

func (s *maintenanceService) PingDatabase(ctx context.Context) error {
	if err := s.repository.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*maintenanceService.PingDatabase").Msg("database ping failed")
		return err
	}

	return nil
}
