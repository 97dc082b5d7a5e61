package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ankush321-collab/data-dashboard/internal/domain"
)

// AnalyticsRepository defines persistence access for analytics snapshots.
type AnalyticsRepository interface {
	Create(ctx context.Context, snapshot *domain.AnalyticsSnapshot) error
	CreateBatch(ctx context.Context, snapshots []domain.AnalyticsSnapshot) ([]domain.AnalyticsSnapshot, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]domain.AnalyticsSnapshot, error)
}

type analyticsRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository returns a Postgres-backed implementation.
// Device and sales breakdowns are stored as jsonb.
func NewAnalyticsRepository(pool *pgxpool.Pool) AnalyticsRepository {
	return &analyticsRepository{pool: pool}
}

func (r *analyticsRepository) Create(ctx context.Context, snapshot *domain.AnalyticsSnapshot) error {
	const query = `
        INSERT INTO analytics (user_id, date, revenue, users, orders, growth_rate, device_stats, sales_data)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		snapshot.UserID,
		snapshot.Date,
		snapshot.Revenue,
		snapshot.Users,
		snapshot.Orders,
		snapshot.GrowthRate,
		snapshot.DeviceStats,
		snapshot.SalesData,
	).Scan(&snapshot.ID, &snapshot.CreatedAt)
}

func (r *analyticsRepository) CreateBatch(ctx context.Context, snapshots []domain.AnalyticsSnapshot) ([]domain.AnalyticsSnapshot, error) {
	created := make([]domain.AnalyticsSnapshot, 0, len(snapshots))
	for i := range snapshots {
		snapshot := snapshots[i]
		if err := r.Create(ctx, &snapshot); err != nil {
			return nil, err
		}
		created = append(created, snapshot)
	}
	return created, nil
}

func (r *analyticsRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]domain.AnalyticsSnapshot, error) {
	const query = `
        SELECT id, user_id, date, revenue, users, orders, growth_rate, device_stats, sales_data, created_at
        FROM analytics WHERE user_id=$1
        ORDER BY date DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []domain.AnalyticsSnapshot
	for rows.Next() {
		var snapshot domain.AnalyticsSnapshot
		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.UserID,
			&snapshot.Date,
			&snapshot.Revenue,
			&snapshot.Users,
			&snapshot.Orders,
			&snapshot.GrowthRate,
			&snapshot.DeviceStats,
			&snapshot.SalesData,
			&snapshot.CreatedAt,
		); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}
