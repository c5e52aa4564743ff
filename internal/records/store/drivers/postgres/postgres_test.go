package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/records/internal/records/store"
	"github.com/stretchr/testify/require"
)

// newMockDB creates a sqlmock database with automatic cleanup and expectation checking.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

var recordRowColumns = []string{"id", "name", "created_at"}

func TestListRecords(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newWithDB(db).Records()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, name, created_at FROM records ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(recordRowColumns).
			AddRow(1, "Widget", now).
			AddRow(2, "Gadget", now))

	records, err := repo.ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, int64(1), records[0].ID)
	require.Equal(t, "Gadget", records[1].Name)
}

func TestListRecordsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newWithDB(db).Records()

	mock.ExpectQuery(`SELECT .+ FROM records ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(recordRowColumns))

	records, err := repo.ListRecords(context.Background())
	require.NoError(t, err)
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestListRecordsError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newWithDB(db).Records()

	mock.ExpectQuery(`SELECT .+ FROM records`).
		WillReturnError(errors.New(`relation "records" does not exist`))

	_, err := repo.ListRecords(context.Background())
	require.EqualError(t, err, `relation "records" does not exist`)
}

func TestCreateRecord(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newWithDB(db).Records()

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO records \(name\) VALUES \(\$1\) RETURNING id, name, created_at`).
		WithArgs("Widget").
		WillReturnRows(sqlmock.NewRows(recordRowColumns).AddRow(7, "Widget", now))

	rec, err := repo.CreateRecord(context.Background(), "Widget")
	require.NoError(t, err)
	require.Equal(t, int64(7), rec.ID)
	require.Equal(t, "Widget", rec.Name)
	require.True(t, rec.CreatedAt.Equal(now))
}

func TestUpdateRecordName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newWithDB(db).Records()

	now := time.Now().UTC()
	mock.ExpectQuery(`UPDATE records SET name = \$1 WHERE id = \$2 RETURNING .+`).
		WithArgs("Gadget", int64(1)).
		WillReturnRows(sqlmock.NewRows(recordRowColumns).AddRow(1, "Gadget", now))

	rec, err := repo.UpdateRecordName(context.Background(), 1, "Gadget")
	require.NoError(t, err)
	require.Equal(t, "Gadget", rec.Name)
}

func TestUpdateRecordNameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newWithDB(db).Records()

	mock.ExpectQuery(`UPDATE records SET name = \$1 WHERE id = \$2`).
		WithArgs("Gadget", int64(99)).
		WillReturnRows(sqlmock.NewRows(recordRowColumns))

	_, err := repo.UpdateRecordName(context.Background(), 99, "Gadget")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetRecordNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newWithDB(db).Records()

	mock.ExpectQuery(`SELECT .+ FROM records WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(recordRowColumns))

	_, err := repo.GetRecord(context.Background(), 5)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteRecord(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newWithDB(db).Records()

	mock.ExpectExec(`DELETE FROM records WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM records WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.DeleteRecord(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = repo.DeleteRecord(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestCountRecords(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newWithDB(db).Records()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM records`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountRecords(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}
