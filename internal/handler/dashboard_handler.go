package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boring-ventures/billiards-management/internal/service"
	"github.com/boring-ventures/billiards-management/pkg/response"
)

// DashboardHandler serves the operational snapshot for the working company
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Snapshot returns open orders, table occupancy, low stock and today's cashflow
// GET /api/v1/dashboard
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	companyID, ok := effectiveCompany(c)
	if !ok {
		return
	}

	result, err := h.dashboardService.Snapshot(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
