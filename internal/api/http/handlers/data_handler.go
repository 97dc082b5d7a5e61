package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Ankush321-collab/data-dashboard/internal/api/dto"
	"github.com/Ankush321-collab/data-dashboard/internal/auth"
	"github.com/Ankush321-collab/data-dashboard/internal/domain"
	"github.com/Ankush321-collab/data-dashboard/internal/service"
	apperrors "github.com/Ankush321-collab/data-dashboard/pkg/util"
)

// DataHandler exposes dashboard data-entry endpoints.
type DataHandler struct {
	data *service.DataService
}

// NewDataHandler constructs handler.
func NewDataHandler(dataService *service.DataService) *DataHandler {
	return &DataHandler{data: dataService}
}

// List handles GET /api/data.
func (h *DataHandler) List(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	entries, err := h.data.List(c.Context(), user.ID)
	if err != nil {
		return apperrors.MapError(err)
	}

	items := make([]dto.EntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.NewEntryResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Create handles POST /api/data.
func (h *DataHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Role == "" {
		return apperrors.NewValidationError("name, email, role required", nil)
	}

	entry := domain.DataEntry{
		Name:   req.Name,
		Email:  req.Email,
		Status: req.Status,
		Role:   req.Role,
		Orders: req.Orders,
	}
	if req.LastLogin != nil {
		entry.LastLogin = *req.LastLogin
	}

	created, err := h.data.Create(c.Context(), user.ID, entry)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "data": dto.NewEntryResponse(created)})
}

// Delete handles DELETE /api/data?id=.
func (h *DataHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	id := c.Query("id")
	if id == "" {
		return apperrors.NewValidationError("id required", nil)
	}

	if err := h.data.Delete(c.Context(), user.ID, id); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "deleted"})
}
