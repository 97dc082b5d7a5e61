package dto

import (
	"time"

	"github.com/Ankush321-collab/data-dashboard/internal/domain"
)

// RecordAnalyticsRequest payload for new snapshots.
type RecordAnalyticsRequest struct {
	Date        *time.Time          `json:"date"`
	Revenue     int                 `json:"revenue"`
	Users       int                 `json:"users"`
	Orders      int                 `json:"orders"`
	GrowthRate  int                 `json:"growthRate"`
	DeviceStats domain.DeviceStats  `json:"deviceStats"`
	SalesData   []domain.SalesPoint `json:"salesData"`
}

// AnalyticsResponse is one snapshot as returned to clients.
type AnalyticsResponse struct {
	ID          string              `json:"id"`
	Date        time.Time           `json:"date"`
	Revenue     int                 `json:"revenue"`
	Users       int                 `json:"users"`
	Orders      int                 `json:"orders"`
	GrowthRate  int                 `json:"growthRate"`
	DeviceStats domain.DeviceStats  `json:"deviceStats"`
	SalesData   []domain.SalesPoint `json:"salesData"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// NewAnalyticsResponse maps a domain snapshot to its response shape.
func NewAnalyticsResponse(snapshot *domain.AnalyticsSnapshot) AnalyticsResponse {
	return AnalyticsResponse{
		ID:          snapshot.ID,
		Date:        snapshot.Date,
		Revenue:     snapshot.Revenue,
		Users:       snapshot.Users,
		Orders:      snapshot.Orders,
		GrowthRate:  snapshot.GrowthRate,
		DeviceStats: snapshot.DeviceStats,
		SalesData:   snapshot.SalesData,
		CreatedAt:   snapshot.CreatedAt,
	}
}
