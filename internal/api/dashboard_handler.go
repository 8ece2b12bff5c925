package api

import (
	"errors"
	"net/http"

	"gymcoach/platform/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves GET /api/dashboard.
type DashboardHandler struct {
	dashboard service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary handles GET /api/dashboard?user_id=.
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		abortWithError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	summary, err := h.dashboard.Summary(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		if !abortStoreError(c, err) {
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
