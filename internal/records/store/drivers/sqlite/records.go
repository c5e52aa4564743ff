package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/records/internal/records/domain"
	"github.com/aussiebroadwan/records/internal/records/store"
	"github.com/aussiebroadwan/records/internal/records/store/drivers/sqlite/gen"
)

type recordsRepo struct {
	db *sql.DB
	q  *gen.Queries
}

func (r *recordsRepo) ListRecords(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.q.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, len(rows))
	for i, row := range rows {
		records[i] = mapRecord(row)
	}
	return records, nil
}

func (r *recordsRepo) GetRecord(ctx context.Context, id int64) (domain.Record, error) {
	row, err := r.q.GetRecordByID(ctx, id)
	if err != nil {
		return domain.Record{}, mapNotFound(err)
	}
	return mapRecord(row), nil
}

// CreateRecord inserts and reads the row back in one transaction. The read is
// a plain SELECT so the driver sees the DATETIME column type and hands back a
// time.Time for created_at.
func (r *recordsRepo) CreateRecord(ctx context.Context, name string) (domain.Record, error) {
	var created gen.Record
	err := withTx(ctx, r.db, r.q, func(q *gen.Queries) error {
		id, err := q.CreateRecord(ctx, name)
		if err != nil {
			return err
		}

		created, err = q.GetRecordByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Record{}, err
	}
	return mapRecord(created), nil
}

func (r *recordsRepo) UpdateRecordName(ctx context.Context, id int64, name string) (domain.Record, error) {
	var updated gen.Record
	err := withTx(ctx, r.db, r.q, func(q *gen.Queries) error {
		affected, err := q.UpdateRecordName(ctx, gen.UpdateRecordNameParams{
			Name: name,
			ID:   id,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return store.ErrNotFound
		}

		updated, err = q.GetRecordByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Record{}, mapNotFound(err)
	}
	return mapRecord(updated), nil
}

func (r *recordsRepo) DeleteRecord(ctx context.Context, id int64) (bool, error) {
	affected, err := r.q.DeleteRecord(ctx, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *recordsRepo) CountRecords(ctx context.Context) (int64, error) {
	return r.q.CountRecords(ctx)
}
