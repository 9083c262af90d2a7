// internal/interfaces/http/handlers/dashboard.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velvet-vogue/storefront-backend/internal/domain/analytics"
)

// DashboardHandler handles the admin dashboard endpoint
type DashboardHandler struct {
	analyticsService *analytics.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(analyticsService *analytics.Service) *DashboardHandler {
	return &DashboardHandler{
		analyticsService: analyticsService,
	}
}

// GetDashboard handles GET /admin/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.analyticsService.GetDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve dashboard",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard retrieved successfully",
		"data":    dashboard,
	})
}
