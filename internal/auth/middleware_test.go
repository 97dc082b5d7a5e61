package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ankush321-collab/data-dashboard/internal/domain"
	apperrors "github.com/Ankush321-collab/data-dashboard/pkg/util"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(context.Context, *domain.User) error { return nil }
func (r *stubUserRepo) Update(context.Context, *domain.User) error { return nil }

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newGuardApp(t *testing.T, tm *TokenManager, repo *stubUserRepo) *fiber.App {
	t.Helper()

	store := NewCookieSessionStore("token", false)
	guard := NewRequestGuard(tm, store, repo, zap.NewNop())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": de.Code})
		},
	})
	app.Get("/protected", guard.Handle, func(c *fiber.Ctx) error {
		user, ok := PrincipalFromContext(c)
		require.True(t, ok)
		return c.SendString(user.ID)
	})
	return app
}

func protectedRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	return req
}

func TestRequestGuard_ValidToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", Email: "u1@example.com", Role: domain.RoleUser},
	}}
	app := newGuardApp(t, tm, repo)

	token, _, err := tm.GenerateToken("u1")
	require.NoError(t, err)

	resp, err := app.Test(protectedRequest(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestGuard_MissingSession(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)
	app := newGuardApp(t, tm, &stubUserRepo{users: map[string]*domain.User{}})

	resp, err := app.Test(protectedRequest(""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequestGuard_ExpiredToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1"},
	}}
	app := newGuardApp(t, tm, repo)

	token, _, err := tm.GenerateTokenWithTTL("u1", -time.Minute)
	require.NoError(t, err)

	resp, err := app.Test(protectedRequest(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequestGuard_GarbageToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)
	app := newGuardApp(t, tm, &stubUserRepo{users: map[string]*domain.User{}})

	resp, err := app.Test(protectedRequest("not-a-token"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequestGuard_UnknownSubject(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)
	app := newGuardApp(t, tm, &stubUserRepo{users: map[string]*domain.User{}})

	token, _, err := tm.GenerateToken("ghost")
	require.NoError(t, err)

	resp, err := app.Test(protectedRequest(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
