package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/records/internal/records/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. The records collection is exposed as a sub-repository so
// drivers can grow more tables without widening this interface.
type Store interface {
	Records() Records

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Records interface {
	// ListRecords returns every record ordered by id ascending.
	ListRecords(ctx context.Context) ([]domain.Record, error)

	// GetRecord fetches a record by id.
	GetRecord(ctx context.Context, id int64) (domain.Record, error)

	// CreateRecord inserts a new record. The database assigns id and created_at.
	CreateRecord(ctx context.Context, name string) (domain.Record, error)

	// UpdateRecordName changes the name of a record and returns the updated row.
	// Returns ErrNotFound when no record has the given id.
	UpdateRecordName(ctx context.Context, id int64, name string) (domain.Record, error)

	// DeleteRecord removes a record. The bool reports whether a row was removed.
	DeleteRecord(ctx context.Context, id int64) (bool, error)

	// CountRecords returns the number of records in the collection.
	CountRecords(ctx context.Context) (int64, error)
}
