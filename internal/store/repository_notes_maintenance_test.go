package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

func newTestMaintenanceRepo(t *testing.T) (NotesMaintenanceRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewNotesMaintenanceRepository(&DB{
		DB:                 db,
		logger:             l,
		errorClassificator: NewPostgresErrorClassifier(),
	}, l), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestPurgeTrashed_Success(t *testing.T) {
	repo, mock := newTestMaintenanceRepo(t)
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes WHERE trashed = $1 AND updated_at <= $2")).
		WithArgs(true, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.PurgeTrashed(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeTrashed_NothingToDelete(t *testing.T) {
	repo, mock := newTestMaintenanceRepo(t)

	mock.ExpectExec("DELETE FROM notes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	count, err := repo.PurgeTrashed(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPurgeTrashed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "transient", dbErr: pgError(pgerrcode.ConnectionFailure), wantErr: ErrDatabaseUnavailable},
		{name: "deadlock", dbErr: pgError(pgerrcode.DeadlockDetected), wantErr: ErrDatabaseUnavailable},
		{name: "failover", dbErr: pgError(pgerrcode.AdminShutdown), wantErr: ErrDatabaseUnavailable},
		{name: "permanent", dbErr: pgError(pgerrcode.UndefinedTable), wantErr: ErrExecutingStatement},
		{name: "non-pg", dbErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestMaintenanceRepo(t)
			mock.ExpectExec("DELETE FROM notes").WillReturnError(tt.dbErr)

			_, err := repo.PurgeTrashed(context.Background(), time.Now())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPurgeTrashed_IsNotRetried(t *testing.T) {
	repo, mock := newTestMaintenanceRepo(t)

	mock.ExpectExec("DELETE FROM notes").WillReturnError(pgError(pgerrcode.CannotConnectNow))

	_, err := repo.PurgeTrashed(context.Background(), time.Now())

	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing_Success(t *testing.T) {
	repo, mock := newTestMaintenanceRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM notes LIMIT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	assert.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing_EmptyTable(t *testing.T) {
	repo, mock := newTestMaintenanceRepo(t)

	mock.ExpectQuery("SELECT id FROM notes").
		WillReturnError(sql.ErrNoRows)

	assert.NoError(t, repo.Ping(context.Background()))
}

func TestPing_Error(t *testing.T) {
	repo, mock := newTestMaintenanceRepo(t)

	mock.ExpectQuery("SELECT id FROM notes").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	err := repo.Ping(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
