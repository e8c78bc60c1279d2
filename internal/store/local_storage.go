package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

const localStorageTable = "local_storage"

// localStorage is the SQLite-backed implementation of [LocalStorage].
type localStorage struct {
	db     *DB
	logger *logger.Logger
	sql    sq.StatementBuilderType
}

// NewLocalStorage constructs a [LocalStorage] on top of an opened and
// migrated SQLite connection.
func NewLocalStorage(db *DB, logger *logger.Logger) LocalStorage {
	logger.Debug().Msg("creating local storage")
	return &localStorage{
		db:     db,
		logger: logger,
		sql:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (s *localStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.sql.
		Select("value").
		From(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*localStorage.GetItem").Str("key", key).Msg("error reading item")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (s *localStorage) SetItem(ctx context.Context, key, value string) error {
	query, args, err := s.sql.
		Insert(localStorageTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localStorage.SetItem").Str("key", key).Msg("error writing item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localStorage) RemoveItem(ctx context.Context, key string) error {
	query, args, err := s.sql.
		Delete(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localStorage.RemoveItem").Str("key", key).Msg("error removing item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localStorage) Keys(ctx context.Context) ([]string, error) {
	query, args, err := s.sql.
		Select("key").
		From(localStorageTable).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}
