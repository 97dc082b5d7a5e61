package dto

import (
	"time"

	"github.com/Ankush321-collab/data-dashboard/internal/domain"
)

// CreateEntryRequest payload for new data entries.
type CreateEntryRequest struct {
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Status    domain.EntryStatus `json:"status"`
	Role      string             `json:"role"`
	Orders    int                `json:"orders"`
	LastLogin *time.Time         `json:"lastLogin"`
}

// EntryResponse is one data entry as returned to clients.
type EntryResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Status    domain.EntryStatus `json:"status"`
	Role      string             `json:"role"`
	LastLogin time.Time          `json:"lastLogin"`
	Orders    int                `json:"orders"`
	CreatedAt time.Time          `json:"createdAt"`
}

// NewEntryResponse maps a domain entry to its response shape.
func NewEntryResponse(entry *domain.DataEntry) EntryResponse {
	return EntryResponse{
		ID:        entry.ID,
		Name:      entry.Name,
		Email:     entry.Email,
		Status:    entry.Status,
		Role:      entry.Role,
		LastLogin: entry.LastLogin,
		Orders:    entry.Orders,
		CreatedAt: entry.CreatedAt,
	}
}
