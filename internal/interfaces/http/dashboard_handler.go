package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/insights"
)

// DashboardHandler serves the aggregated dashboard (protected).
type DashboardHandler struct {
	uc *insights.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *insights.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard snapshot: stats, health score, alerts, daily summary
// @Description  Always returns 200; sources that failed to load are listed in degraded.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id required"})
	}
	return c.JSON(h.uc.Dashboard(c.Context(), userID))
}
