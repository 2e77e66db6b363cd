package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saieswarnookala/project-X/internal/services"
)

// DashboardHandler serves the dashboard aggregate.
type DashboardHandler struct {
	dashboardService services.IDashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.IDashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Stats())
}
