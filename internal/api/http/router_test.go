package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ankush321-collab/data-dashboard/internal/api/http/handlers"
	"github.com/Ankush321-collab/data-dashboard/internal/auth"
	"github.com/Ankush321-collab/data-dashboard/internal/config"
	"github.com/Ankush321-collab/data-dashboard/internal/domain"
	"github.com/Ankush321-collab/data-dashboard/internal/events"
	"github.com/Ankush321-collab/data-dashboard/internal/observability"
	"github.com/Ankush321-collab/data-dashboard/internal/service"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("u%d", r.nextID)
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type testServer struct {
	app  *fiber.App
	repo *fakeUserRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret",
			SessionTTLHours:   1,
			BcryptCost:        bcrypt.MinCost,
			MinPasswordLength: 6,
			SessionCookieName: "token",
		},
	}

	repo := newFakeUserRepo()
	dispatcher := events.NewInMemoryDispatcher()
	logger := zap.NewNop()

	authService := service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo:   repo,
		Dispatcher: dispatcher,
	})
	profileService := service.NewProfileService(repo, dispatcher)

	sessions := auth.NewCookieSessionStore(cfg.Auth.SessionCookieName, false)
	guard := auth.NewRequestGuard(authService.TokenManager(), sessions, repo, logger)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Auth:    handlers.NewAuthHandler(authService, sessions),
		Profile: handlers.NewProfileHandler(profileService),
		// Health, Data and Analytics handlers are exercised in their own
		// packages; the auth flow does not need them.
		Health:    handlers.NewHealthHandler("test", "test", nil, nil),
		Data:      handlers.NewDataHandler(nil),
		Analytics: handlers.NewAnalyticsHandler(nil),
		Guard:     guard,
	})

	return &testServer{app: app, repo: repo}
}

func (s *testServer) do(t *testing.T, method, path, cookie string, body any) *stdhttp.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&stdhttp.Cookie{Name: "token", Value: cookie})
	}
	resp, err := s.app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func sessionCookie(t *testing.T, resp *stdhttp.Response) *stdhttp.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" {
			return cookie
		}
	}
	t.Fatal("token cookie not set")
	return nil
}

func decodeBody(t *testing.T, resp *stdhttp.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (s *testServer) signup(t *testing.T, name, email, password string) *stdhttp.Cookie {
	t.Helper()
	resp := s.do(t, stdhttp.MethodPost, "/api/auth/signup", "", fiber.Map{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, stdhttp.StatusCreated, resp.StatusCode)
	return sessionCookie(t, resp)
}

func TestSignupSetsSessionAndGrantsAccess(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	cookie := srv.signup(t, "Ada", "ada@example.com", "secret123")
	assert.True(t, cookie.HttpOnly)

	resp := srv.do(t, stdhttp.MethodGet, "/api/user/me", cookie.Value, nil)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", user["email"])
	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{stdhttp.MethodGet, "/api/user/me"},
		{stdhttp.MethodPut, "/api/user"},
		{stdhttp.MethodPatch, "/api/user/password"},
		{stdhttp.MethodPost, "/api/auth/logout"},
	} {
		resp := srv.do(t, tc.method, tc.path, "", nil)
		assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.path)

		body := decodeBody(t, resp)
		errBody, ok := body["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "UNAUTHORIZED", errBody["code"])
		assert.Equal(t, "not authenticated", errBody["message"])
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.signup(t, "Ada", "ada@example.com", "secret123")

	wrongPassword := srv.do(t, stdhttp.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ada@example.com", "password": "wrong-password",
	})
	unknownEmail := srv.do(t, stdhttp.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "nobody@example.com", "password": "secret123",
	})

	assert.Equal(t, stdhttp.StatusUnauthorized, wrongPassword.StatusCode)
	assert.Equal(t, stdhttp.StatusUnauthorized, unknownEmail.StatusCode)
	assert.Equal(t, decodeBody(t, wrongPassword), decodeBody(t, unknownEmail))
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	cookie := srv.signup(t, "Ada", "ada@example.com", "secret123")

	resp := srv.do(t, stdhttp.MethodPost, "/api/auth/logout", cookie.Value, nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	cleared := sessionCookie(t, resp)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.Expires.Before(time.Now()))

	// The client's slot is now empty, so the next request is anonymous.
	resp = srv.do(t, stdhttp.MethodGet, "/api/user/me", cleared.Value, nil)
	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)
}

func TestProfileUpdateIgnoresEmailAndPassword(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	cookie := srv.signup(t, "Ada", "ada@example.com", "secret123")

	resp := srv.do(t, stdhttp.MethodPut, "/api/user", cookie.Value, fiber.Map{
		"email":    "attacker@example.com",
		"password": "hunter2",
		"bio":      "hi",
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hi", user["bio"])
	assert.Equal(t, "ada@example.com", user["email"])

	// The original password still authenticates.
	resp = srv.do(t, stdhttp.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ada@example.com", "password": "secret123",
	})
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
}

func TestChangePasswordFlow(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	cookie := srv.signup(t, "Ada", "ada@example.com", "oldsecret")

	// Both fields are required before the service is consulted.
	resp := srv.do(t, stdhttp.MethodPatch, "/api/user/password", cookie.Value, fiber.Map{
		"currentPassword": "", "newPassword": "newsecret",
	})
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)

	resp = srv.do(t, stdhttp.MethodPatch, "/api/user/password", cookie.Value, fiber.Map{
		"currentPassword": "wrong", "newPassword": "newsecret",
	})
	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)

	resp = srv.do(t, stdhttp.MethodPatch, "/api/user/password", cookie.Value, fiber.Map{
		"currentPassword": "oldsecret", "newPassword": "tiny",
	})
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)

	resp = srv.do(t, stdhttp.MethodPatch, "/api/user/password", cookie.Value, fiber.Map{
		"currentPassword": "oldsecret", "newPassword": "newsecret",
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	// The session that changed the password keeps working.
	resp = srv.do(t, stdhttp.MethodGet, "/api/user/me", cookie.Value, nil)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	// Old password no longer logs in; the new one does.
	resp = srv.do(t, stdhttp.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ada@example.com", "password": "oldsecret",
	})
	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)

	resp = srv.do(t, stdhttp.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ada@example.com", "password": "newsecret",
	})
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := srv.do(t, stdhttp.MethodPost, "/api/auth/signup", "", fiber.Map{
		"name": "Ada", "email": "ada@example.com", "password": "tiny",
	})
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)

	srv.signup(t, "Ada", "ada@example.com", "secret123")
	resp = srv.do(t, stdhttp.MethodPost, "/api/auth/signup", "", fiber.Map{
		"name": "Imposter", "email": "ADA@example.com", "password": "secret123",
	})
	assert.Equal(t, stdhttp.StatusConflict, resp.StatusCode)
}
