// internal/handlers/dashboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wooshcafe/woosh-backend/internal/services"
	"github.com/wooshcafe/woosh-backend/internal/utils"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GET /dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	utils.SuccessResponse(c, h.dashboardService.Summary(c.Request.Context()))
}
