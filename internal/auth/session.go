package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionStore abstracts the per-client slot that carries the session
// token between requests. Write persists a token for the client behind
// ctx, Read returns it ("" when absent), and Clear guarantees a
// subsequent Read for the same client returns absent.
type SessionStore interface {
	Write(c *fiber.Ctx, token string, expires time.Time)
	Read(c *fiber.Ctx) string
	Clear(c *fiber.Ctx)
}

// CookieSessionStore keeps the session token in an HttpOnly cookie whose
// lifetime matches the token's.
type CookieSessionStore struct {
	name   string
	secure bool
}

// NewCookieSessionStore constructs a store over the named cookie. The
// Secure attribute is set when the service fronts HTTPS traffic.
func NewCookieSessionStore(name string, secure bool) *CookieSessionStore {
	if name == "" {
		name = "token"
	}
	return &CookieSessionStore{name: name, secure: secure}
}

// Write sets the session cookie on the response.
func (s *CookieSessionStore) Write(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// Read returns the session token from the request, or "" when absent.
func (s *CookieSessionStore) Read(c *fiber.Ctx) string {
	return c.Cookies(s.name)
}

// Clear expires the session cookie. Idempotent.
func (s *CookieSessionStore) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
