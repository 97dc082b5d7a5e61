package domain

import "time"

// EntryStatus represents lifecycle states for a dashboard data entry.
type EntryStatus string

const (
	EntryStatusActive   EntryStatus = "Active"
	EntryStatusInactive EntryStatus = "Inactive"
	EntryStatusPending  EntryStatus = "Pending"
)

// DataEntry is a business record owned by one dashboard user.
type DataEntry struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Status    EntryStatus
	Role      string
	LastLogin time.Time
	Orders    int
	CreatedAt time.Time
}
