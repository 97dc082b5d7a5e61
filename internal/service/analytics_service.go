package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/Ankush321-collab/data-dashboard/internal/domain"
	"github.com/Ankush321-collab/data-dashboard/internal/repository"
)

// analyticsWindow is how many daily snapshots the dashboard displays.
const analyticsWindow = 7

// AnalyticsService manages per-user analytics snapshots.
type AnalyticsService struct {
	analytics repository.AnalyticsRepository
}

// NewAnalyticsService builds the service.
func NewAnalyticsService(analytics repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analytics: analytics}
}

// Recent returns the caller's latest snapshots, seeding a week of sample
// data on first read.
func (s *AnalyticsService) Recent(ctx context.Context, userID string) ([]domain.AnalyticsSnapshot, error) {
	snapshots, err := s.analytics.ListRecentByUser(ctx, userID, analyticsWindow)
	if err != nil {
		return nil, err
	}
	if len(snapshots) > 0 {
		return snapshots, nil
	}
	return s.analytics.CreateBatch(ctx, sampleSnapshots(userID))
}

// Record stores a new snapshot owned by the caller.
func (s *AnalyticsService) Record(ctx context.Context, userID string, snapshot domain.AnalyticsSnapshot) (*domain.AnalyticsSnapshot, error) {
	snapshot.UserID = userID
	if snapshot.Date.IsZero() {
		snapshot.Date = time.Now()
	}
	if err := s.analytics.Create(ctx, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func sampleSnapshots(userID string) []domain.AnalyticsSnapshot {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	salesWeek := func() []domain.SalesPoint {
		points := make([]domain.SalesPoint, 0, len(days))
		for _, day := range days {
			points = append(points, domain.SalesPoint{
				Day:    day,
				Sales:  rand.Intn(10) + 10,
				Target: 15,
			})
		}
		return points
	}

	snapshots := make([]domain.AnalyticsSnapshot, 0, len(days))
	for i := range days {
		snapshots = append(snapshots, domain.AnalyticsSnapshot{
			UserID:     userID,
			Date:       time.Now().AddDate(0, 0, -(len(days) - 1 - i)),
			Revenue:    rand.Intn(5000) + 3000,
			Users:      rand.Intn(5000) + 2000,
			Orders:     rand.Intn(2000) + 1000,
			GrowthRate: rand.Intn(30) + 60,
			DeviceStats: domain.DeviceStats{
				Desktop: rand.Intn(200) + 300,
				Mobile:  rand.Intn(150) + 250,
				Tablet:  rand.Intn(100) + 150,
				Other:   rand.Intn(50) + 50,
			},
			SalesData: salesWeek(),
		})
	}
	return snapshots
}
