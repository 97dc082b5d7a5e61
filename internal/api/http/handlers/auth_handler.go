package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Ankush321-collab/data-dashboard/internal/api/dto"
	"github.com/Ankush321-collab/data-dashboard/internal/auth"
	"github.com/Ankush321-collab/data-dashboard/internal/service"
	apperrors "github.com/Ankush321-collab/data-dashboard/pkg/util"
)

// AuthHandler exposes signup, login, logout and password-change endpoints.
type AuthHandler struct {
	authService *service.AuthService
	sessions    auth.SessionStore
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, sessions auth.SessionStore) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("name, email, password required", nil)
	}

	user, token, exp, err := h.authService.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return apperrors.MapError(err)
	}

	h.sessions.Write(c, token, exp)
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    dto.NewUserResponse(user),
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return apperrors.MapError(err)
	}

	h.sessions.Write(c, token, exp)
	return c.JSON(fiber.Map{
		"success": true,
		"user":    dto.NewUserResponse(user),
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}

// Logout handles POST /api/auth/logout. Runs behind the request guard,
// so the caller identity is known for the audit trail.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if user, ok := auth.PrincipalFromContext(c); ok {
		h.authService.Logout(c.Context(), user.ID)
	}
	h.sessions.Clear(c)
	return c.JSON(fiber.Map{"success": true, "message": "logged out"})
}

// ChangePassword handles PATCH /api/user/password. Both passwords must be
// present before the service is consulted.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("current and new password required", nil)
	}

	if err := h.authService.ChangePassword(c.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "password updated"})
}
