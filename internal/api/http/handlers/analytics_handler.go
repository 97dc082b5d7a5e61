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

// AnalyticsHandler exposes analytics snapshot endpoints.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analyticsService}
}

// Recent handles GET /api/analytics.
func (h *AnalyticsHandler) Recent(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	snapshots, err := h.analytics.Recent(c.Context(), user.ID)
	if err != nil {
		return apperrors.MapError(err)
	}

	items := make([]dto.AnalyticsResponse, 0, len(snapshots))
	for i := range snapshots {
		items = append(items, dto.NewAnalyticsResponse(&snapshots[i]))
	}
	return c.JSON(fiber.Map{"success": true, "analytics": items})
}

// Record handles POST /api/analytics.
func (h *AnalyticsHandler) Record(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.RecordAnalyticsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	snapshot := domain.AnalyticsSnapshot{
		Revenue:     req.Revenue,
		Users:       req.Users,
		Orders:      req.Orders,
		GrowthRate:  req.GrowthRate,
		DeviceStats: req.DeviceStats,
		SalesData:   req.SalesData,
	}
	if req.Date != nil {
		snapshot.Date = *req.Date
	}

	created, err := h.analytics.Record(c.Context(), user.ID, snapshot)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "analytics": dto.NewAnalyticsResponse(created)})
}
