package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/records/internal/records/domain"
	"github.com/aussiebroadwan/records/internal/records/store"
)

const recordColumns = `id, name, created_at`

type recordsRepo struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.Record, error) {
	var rec domain.Record
	if err := row.Scan(&rec.ID, &rec.Name, &rec.CreatedAt); err != nil {
		return domain.Record{}, err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, nil
}

func (r *recordsRepo) ListRecords(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM records ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *recordsRepo) GetRecord(ctx context.Context, id int64) (domain.Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, store.ErrNotFound
	}
	return rec, err
}

func (r *recordsRepo) CreateRecord(ctx context.Context, name string) (domain.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO records (name) VALUES ($1) RETURNING `+recordColumns, name)
	return scanRecord(row)
}

func (r *recordsRepo) UpdateRecordName(ctx context.Context, id int64, name string) (domain.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE records SET name = $1 WHERE id = $2 RETURNING `+recordColumns, name, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, store.ErrNotFound
	}
	return rec, err
}

func (r *recordsRepo) DeleteRecord(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *recordsRepo) CountRecords(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&count)
	return count, err
}
