package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ankush321-collab/data-dashboard/internal/domain"
)

// DataEntryRepository defines persistence access for dashboard data rows.
type DataEntryRepository interface {
	Create(ctx context.Context, entry *domain.DataEntry) error
	CreateBatch(ctx context.Context, entries []domain.DataEntry) ([]domain.DataEntry, error)
	ListByUser(ctx context.Context, userID string) ([]domain.DataEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type dataEntryRepository struct {
	pool *pgxpool.Pool
}

// NewDataEntryRepository returns a Postgres-backed implementation.
func NewDataEntryRepository(pool *pgxpool.Pool) DataEntryRepository {
	return &dataEntryRepository{pool: pool}
}

func (r *dataEntryRepository) Create(ctx context.Context, entry *domain.DataEntry) error {
	const query = `
        INSERT INTO data_entries (user_id, name, email, status, role, last_login, orders)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		entry.UserID,
		entry.Name,
		entry.Email,
		entry.Status,
		entry.Role,
		entry.LastLogin,
		entry.Orders,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *dataEntryRepository) CreateBatch(ctx context.Context, entries []domain.DataEntry) ([]domain.DataEntry, error) {
	created := make([]domain.DataEntry, 0, len(entries))
	for i := range entries {
		entry := entries[i]
		if err := r.Create(ctx, &entry); err != nil {
			return nil, err
		}
		created = append(created, entry)
	}
	return created, nil
}

func (r *dataEntryRepository) ListByUser(ctx context.Context, userID string) ([]domain.DataEntry, error) {
	const query = `
        SELECT id, user_id, name, email, status, role, last_login, orders, created_at
        FROM data_entries WHERE user_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.DataEntry
	for rows.Next() {
		var entry domain.DataEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Name,
			&entry.Email,
			&entry.Status,
			&entry.Role,
			&entry.LastLogin,
			&entry.Orders,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *dataEntryRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM data_entries WHERE id=$1 AND user_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
