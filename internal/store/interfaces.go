package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NotesMaintenanceRepository runs the housekeeping queries of the
// maintenance server directly against the backend notes table.
type NotesMaintenanceRepository interface {
	// PurgeTrashed deletes every trashed note last updated at or before
	// cutoff and returns how many rows were removed.
	PurgeTrashed(ctx context.Context, cutoff time.Time) (int64, error)
	// Ping performs a minimal read to keep the database awake.
	Ping(ctx context.Context) error
}
