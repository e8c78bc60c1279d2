package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// DefaultBackupInterval is used by Start when no positive interval is given.
const DefaultBackupInterval = time.Hour

type clientBackupJob struct {
	backupService BackupService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientBackupJob creates a clientBackupJob that calls
// backupService.Snapshot on a ticker. The job is idle until Start is called.
func NewClientBackupJob(backupService BackupService, logger *logger.Logger) BackupJob {
	return &clientBackupJob{backupService: backupService, logger: logger}
}

// Start implements BackupJob. It stops any previously running job, then
// launches a background goroutine that attempts a snapshot immediately and
// every interval afterwards. The 24-hour guard inside Snapshot keeps the
// attempts cheap. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *clientBackupJob) Start(ctx context.Context, email string, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultBackupInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.snapshot(jobCtx, email)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.snapshot(jobCtx, email)
			}
		}
	}()
}

// Stop implements BackupJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientBackupJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientBackupJob) snapshot(ctx context.Context, email string) {
	if ctx.Err() != nil {
		return
	}
	if _, err := j.backupService.Snapshot(ctx, email); err != nil {
		j.logger.Err(err).Str("func", "*clientBackupJob.snapshot").Str("email", email).Msg("scheduled backup failed")
	}
}
