package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ankush321-collab/data-dashboard/internal/api/dto"
	"github.com/Ankush321-collab/data-dashboard/internal/auth"
	"github.com/Ankush321-collab/data-dashboard/internal/service"
	apperrors "github.com/Ankush321-collab/data-dashboard/pkg/util"
)

// ProfileHandler exposes profile read and update endpoints.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Me handles GET /api/user/me.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	return c.JSON(fiber.Map{"success": true, "user": dto.NewUserResponse(user)})
}

// Update handles PUT /api/user. The request type only admits allow-listed
// fields, so email and password in the raw payload are ignored.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	updated, err := h.profiles.Update(c.Context(), user.ID, service.ProfilePatch{
		Name:     req.Name,
		Phone:    req.Phone,
		Location: req.Location,
		Position: req.Position,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"success": true, "user": dto.NewUserResponse(updated)})
}
