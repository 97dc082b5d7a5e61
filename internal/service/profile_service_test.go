package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ankush321-collab/data-dashboard/internal/domain"
	"github.com/Ankush321-collab/data-dashboard/internal/events"
)

func seedUser(t *testing.T, repo *memoryUserRepo) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "stored-hash",
		Role:         domain.RoleUser,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestProfileService_UpdateAppliesPatch(t *testing.T) {
	t.Parallel()

	repo := newMemoryUserRepo()
	user := seedUser(t, repo)
	svc := NewProfileService(repo, events.NewInMemoryDispatcher())

	bio := "hi"
	location := " Lagos "
	updated, err := svc.Update(context.Background(), user.ID, ProfilePatch{
		Bio:      &bio,
		Location: &location,
	})
	require.NoError(t, err)

	assert.Equal(t, "hi", updated.Bio)
	assert.Equal(t, "Lagos", updated.Location)
	assert.Equal(t, "Ada", updated.Name)
}

func TestProfileService_UpdateCannotTouchEmailOrPassword(t *testing.T) {
	t.Parallel()

	repo := newMemoryUserRepo()
	user := seedUser(t, repo)
	svc := NewProfileService(repo, events.NewInMemoryDispatcher())

	bio := "hi"
	_, err := svc.Update(context.Background(), user.ID, ProfilePatch{Bio: &bio})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", stored.Email)
	assert.Equal(t, "stored-hash", stored.PasswordHash)
	assert.Equal(t, "hi", stored.Bio)
}

func TestProfileService_UpdateNoFieldsIsNoop(t *testing.T) {
	t.Parallel()

	repo := newMemoryUserRepo()
	user := seedUser(t, repo)
	svc := NewProfileService(repo, events.NewInMemoryDispatcher())

	updated, err := svc.Update(context.Background(), user.ID, ProfilePatch{})
	require.NoError(t, err)
	assert.Equal(t, user.ID, updated.ID)
}

func TestProfileService_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newMemoryUserRepo(), events.NewInMemoryDispatcher())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	bio := "hi"
	_, err = svc.Update(context.Background(), "missing", ProfilePatch{Bio: &bio})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
