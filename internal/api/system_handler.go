package api

import (
	"net/http"

	"gymcoach/platform/internal/store"

	"github.com/gin-gonic/gin"
)

const maxDiagnosticCollections = 10

// SystemHandler serves the liveness and storage diagnostic endpoints.
type SystemHandler struct {
	store  store.Store
	dbName string
	uriSet bool
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(st store.Store, dbName string, uriSet bool) *SystemHandler {
	return &SystemHandler{store: st, dbName: dbName, uriSet: uriSet}
}

// Root handles GET /.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Gym Coach Platform API"})
}

// TestDatabase handles GET /test. It probes the store and reports the
// outcome as plain text fields. Failures are reported in the body,
// truncated, never as a 5xx.
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if h.uriSet {
		response["database_url"] = "set"
	}

	ctx := c.Request.Context()
	if err := h.store.Ping(ctx); err != nil {
		response["database"] = "error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "available"
	response["database_name"] = h.dbName
	response["connection_status"] = "connected"

	collections, err := h.store.CollectionNames(ctx)
	if err != nil {
		response["database"] = "connected but error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, response)
		return
	}

	if len(collections) > maxDiagnosticCollections {
		collections = collections[:maxDiagnosticCollections]
	}
	response["collections"] = collections
	response["database"] = "connected and working"

	c.JSON(http.StatusOK, response)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
