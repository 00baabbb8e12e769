package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/stockbook/backend/internal/application/report"
)

// DashboardHandler handles the business overview endpoint
type DashboardHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats godoc
// @Summary      Get dashboard statistics
// @Description  Returns aggregate counts, sales and purchase totals, and outstanding receivables and payables.
// @Tags         reports
// @Produce      json
// @Success      200 {object} dto.Response{data=report.DashboardStats}
// @Security     BearerAuth
// @Router       /reports/dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}
