package domain

import "time"

// DeviceStats breaks traffic down by device category.
type DeviceStats struct {
	Desktop int `json:"desktop"`
	Mobile  int `json:"mobile"`
	Tablet  int `json:"tablet"`
	Other   int `json:"other"`
}

// SalesPoint is one day of sales against target.
type SalesPoint struct {
	Day    string `json:"day"`
	Sales  int    `json:"sales"`
	Target int    `json:"target"`
}

// AnalyticsSnapshot captures one day of metrics for a dashboard user.
type AnalyticsSnapshot struct {
	ID          string
	UserID      string
	Date        time.Time
	Revenue     int
	Users       int
	Orders      int
	GrowthRate  int
	DeviceStats DeviceStats
	SalesData   []SalesPoint
	CreatedAt   time.Time
}
