package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Ankush321-collab/data-dashboard/internal/domain"
	"github.com/Ankush321-collab/data-dashboard/internal/repository"
	apperrors "github.com/Ankush321-collab/data-dashboard/pkg/util"
)

const principalKey = "auth_principal"

// notAuthenticatedMsg is the single message returned for every guard
// failure; the actual cause is logged, never exposed.
const notAuthenticatedMsg = "not authenticated"

// RequestGuard resolves a caller identity from the session slot and
// refuses requests that do not carry a valid, unexpired token.
type RequestGuard struct {
	tokens   *TokenManager
	sessions SessionStore
	users    repository.UserRepository
	logger   *zap.Logger
}

// NewRequestGuard constructs the guard middleware.
func NewRequestGuard(tokens *TokenManager, sessions SessionStore, users repository.UserRepository, logger *zap.Logger) *RequestGuard {
	return &RequestGuard{tokens: tokens, sessions: sessions, users: users, logger: logger}
}

// Handle enforces authentication for protected routes. All failure modes
// collapse to a uniform 401 with no internal detail.
func (g *RequestGuard) Handle(c *fiber.Ctx) error {
	token := g.sessions.Read(c)
	if token == "" {
		return apperrors.NewUnauthorized(notAuthenticatedMsg)
	}

	claims, err := g.tokens.ParseToken(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			g.logger.Debug("session token expired", zap.String("path", c.Path()))
		} else {
			g.logger.Debug("session token rejected", zap.String("path", c.Path()))
		}
		return apperrors.NewUnauthorized(notAuthenticatedMsg)
	}

	user, err := g.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized(notAuthenticatedMsg)
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, user)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated user.
func PrincipalFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
