package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ankush321-collab/data-dashboard/internal/domain"
)

type memoryAnalyticsRepo struct {
	snapshots []domain.AnalyticsSnapshot
	nextID    int
}

func (r *memoryAnalyticsRepo) Create(_ context.Context, snapshot *domain.AnalyticsSnapshot) error {
	r.nextID++
	snapshot.ID = fmt.Sprintf("a%d", r.nextID)
	r.snapshots = append(r.snapshots, *snapshot)
	return nil
}

func (r *memoryAnalyticsRepo) CreateBatch(ctx context.Context, snapshots []domain.AnalyticsSnapshot) ([]domain.AnalyticsSnapshot, error) {
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

func (r *memoryAnalyticsRepo) ListRecentByUser(_ context.Context, userID string, limit int) ([]domain.AnalyticsSnapshot, error) {
	var out []domain.AnalyticsSnapshot
	for _, snapshot := range r.snapshots {
		if snapshot.UserID == userID {
			out = append(out, snapshot)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestAnalyticsService_RecentSeedsAWeek(t *testing.T) {
	t.Parallel()

	svc := NewAnalyticsService(&memoryAnalyticsRepo{})
	ctx := context.Background()

	snapshots, err := svc.Recent(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, snapshots, 7)
	for _, snapshot := range snapshots {
		assert.Equal(t, "u1", snapshot.UserID)
		assert.Len(t, snapshot.SalesData, 7)
		assert.NotZero(t, snapshot.Revenue)
	}

	again, err := svc.Recent(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, again, 7)
}

func TestAnalyticsService_RecordDefaultsDate(t *testing.T) {
	t.Parallel()

	svc := NewAnalyticsService(&memoryAnalyticsRepo{})

	created, err := svc.Record(context.Background(), "u1", domain.AnalyticsSnapshot{Revenue: 100})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.UserID)
	assert.False(t, created.Date.IsZero())
	assert.NotEmpty(t, created.ID)
}
