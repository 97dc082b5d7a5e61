package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Ankush321-collab/data-dashboard/internal/domain"
	"github.com/Ankush321-collab/data-dashboard/internal/repository"
	apperrors "github.com/Ankush321-collab/data-dashboard/pkg/util"
)

// DataService manages per-user dashboard data entries.
type DataService struct {
	entries repository.DataEntryRepository
}

// NewDataService builds the service.
func NewDataService(entries repository.DataEntryRepository) *DataService {
	return &DataService{entries: entries}
}

// List returns the caller's entries, newest first. A first-time caller
// with no rows gets a seeded sample set so the dashboard is not empty.
func (s *DataService) List(ctx context.Context, userID string) ([]domain.DataEntry, error) {
	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}
	return s.entries.CreateBatch(ctx, sampleEntries(userID))
}

// Create stores a new entry owned by the caller.
func (s *DataService) Create(ctx context.Context, userID string, entry domain.DataEntry) (*domain.DataEntry, error) {
	entry.UserID = userID
	if entry.Status == "" {
		entry.Status = domain.EntryStatusActive
	}
	if entry.LastLogin.IsZero() {
		entry.LastLogin = time.Now()
	}
	if err := s.entries.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes one of the caller's entries.
func (s *DataService) Delete(ctx context.Context, userID, id string) error {
	if err := s.entries.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("data entry", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

func sampleEntries(userID string) []domain.DataEntry {
	seed := []struct {
		name   string
		email  string
		status domain.EntryStatus
		role   string
		orders int
	}{
		{"John Doe", "john@example.com", domain.EntryStatusActive, "Admin", 45},
		{"Jane Smith", "jane@example.com", domain.EntryStatusActive, "User", 32},
		{"Bob Johnson", "bob@example.com", domain.EntryStatusInactive, "User", 18},
		{"Alice Brown", "alice@example.com", domain.EntryStatusPending, "User", 0},
		{"Charlie Wilson", "charlie@example.com", domain.EntryStatusActive, "Manager", 67},
		{"Eva Martinez", "eva@example.com", domain.EntryStatusActive, "User", 23},
		{"David Lee", "david@example.com", domain.EntryStatusActive, "User", 41},
		{"Sarah Taylor", "sarah@example.com", domain.EntryStatusInactive, "User", 15},
		{"Mike Anderson", "mike@example.com", domain.EntryStatusActive, "Admin", 89},
		{"Lisa White", "lisa@example.com", domain.EntryStatusActive, "User", 28},
	}

	week := 7 * 24 * time.Hour
	entries := make([]domain.DataEntry, 0, len(seed))
	for _, row := range seed {
		entries = append(entries, domain.DataEntry{
			UserID:    userID,
			Name:      row.name,
			Email:     row.email,
			Status:    row.status,
			Role:      row.role,
			Orders:    row.orders,
			LastLogin: time.Now().Add(-time.Duration(rand.Int63n(int64(week)))),
		})
	}
	return entries
}
