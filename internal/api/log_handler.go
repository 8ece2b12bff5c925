package api

import (
	"fmt"
	"net/http"

	"gymcoach/platform/internal/domain"
	"gymcoach/platform/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultLogLimit = 30

// LogHandler serves the daily health log endpoints.
type LogHandler struct {
	logs service.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logs service.LogService) *LogHandler {
	return &LogHandler{logs: logs}
}

// AddLog handles POST /api/logs.
func (h *LogHandler) AddLog(c *gin.Context) {
	var entry domain.DailyLog
	if err := c.ShouldBindJSON(&entry); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	entry.ID = ""

	id, err := h.logs.AddLog(c.Request.Context(), &entry)
	if err != nil {
		if !abortStoreError(c, err) {
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListLogs handles GET /api/logs?client_id=&limit=.
func (h *LogHandler) ListLogs(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		abortWithError(c, http.StatusBadRequest, "client_id is required")
		return
	}

	limit, ok := limitParam(c, defaultLogLimit)
	if !ok {
		return
	}

	logs, err := h.logs.ListLogs(c.Request.Context(), clientID, limit)
	if err != nil {
		if !abortStoreError(c, err) {
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, logs)
}
