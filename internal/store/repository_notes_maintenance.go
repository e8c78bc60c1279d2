// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

const notesTable = "notes"

// notesMaintenanceRepository is the PostgreSQL-backed implementation of
// [NotesMaintenanceRepository].
type notesMaintenanceRepository struct {
	db     *DB
	logger *logger.Logger
	sql    sq.StatementBuilderType
}

// NewNotesMaintenanceRepository constructs a [NotesMaintenanceRepository]
// backed by the provided Postgres connection.
func NewNotesMaintenanceRepository(db *DB, logger *logger.Logger) NotesMaintenanceRepository {
	logger.Debug().Msg("creating notes maintenance repository")
	return &notesMaintenanceRepository{
		db:     db,
		logger: logger,
		sql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// PurgeTrashed deletes trashed notes whose updated_at is at or before cutoff.
//
// Transient driver errors (see [ClassifyPgError]) are reported as
// [ErrDatabaseUnavailable] so the scheduler knows a later call may succeed.
// Any other failure is [ErrExecutingStatement].
func (r *notesMaintenanceRepository) PurgeTrashed(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sql.
		Delete(notesTable).
		Where(sq.Eq{"trashed": true}).
		Where(sq.LtOrEq{"updated_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*notesMaintenanceRepository.PurgeTrashed").Msg("error deleting trashed notes")
		return 0, r.wrap(err, ErrExecutingStatement)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().Str("func", "*notesMaintenanceRepository.PurgeTrashed").
		Int64("count", count).
		Time("cutoff", cutoff).
		Msg("trashed notes purged")

	return count, nil
}

// Ping selects at most one note id. An empty table is still a successful
// ping.
func (r *notesMaintenanceRepository) Ping(ctx context.Context) error {
	query, args, err := r.sql.
		Select("id").
		From(notesTable).
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.FromContext(ctx).Err(err).Str("func", "*notesMaintenanceRepository.Ping").Msg("error pinging database")
		return r.wrap(err, ErrExecutingQuery)
	}

	return nil
}

func (r *notesMaintenanceRepository) wrap(err, fallback error) error {
	if r.db.retryable(err) {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return fmt.Errorf("%w: %w", fallback, err)
}
