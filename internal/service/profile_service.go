package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Ankush321-collab/data-dashboard/internal/domain"
	"github.com/Ankush321-collab/data-dashboard/internal/events"
	"github.com/Ankush321-collab/data-dashboard/internal/repository"
)

// ProfilePatch is the full set of profile fields a user may change
// through the generic update path. Email and password are not
// representable here; each has its own dedicated flow.
type ProfilePatch struct {
	Name     *string
	Phone    *string
	Location *string
	Position *string
	Bio      *string
	Avatar   *string
}

// ProfileService handles reading and updating account profiles.
type ProfileService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewProfileService builds the service.
func NewProfileService(users repository.UserRepository, dispatcher events.Dispatcher) *ProfileService {
	return &ProfileService{users: users, dispatcher: dispatcher}
}

// Get loads the caller's account.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update applies the allow-listed patch fields to the caller's account.
// Absent fields are left untouched.
func (s *ProfileService) Update(ctx context.Context, userID string, patch ProfilePatch) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	var changed []string
	apply := func(field string, dst *string, src *string) {
		if src == nil {
			return
		}
		*dst = strings.TrimSpace(*src)
		changed = append(changed, field)
	}
	apply("name", &user.Name, patch.Name)
	apply("phone", &user.Phone, patch.Phone)
	apply("location", &user.Location, patch.Location)
	apply("position", &user.Position, patch.Position)
	apply("bio", &user.Bio, patch.Bio)
	apply("avatar", &user.Avatar, patch.Avatar)

	if len(changed) == 0 {
		return user, nil
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventProfileUpdated,
			UserID:    user.ID,
			Timestamp: time.Now(),
			Payload:   events.ProfileUpdatedPayload{Fields: changed},
		})
	}
	return user, nil
}
