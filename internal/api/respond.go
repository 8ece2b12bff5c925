package api

import (
	"errors"
	"net/http"

	"gymcoach/platform/internal/store"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// abortWithError returns a JSON error response and aborts the request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortStoreError handles the store-level errors every storage-backed
// endpoint can hit. Returns true when the error was handled.
func abortStoreError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, store.ErrUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, "Database not available")
	case errors.Is(err, store.ErrInvalidID):
		abortWithError(c, http.StatusBadRequest, "Invalid ID format")
	default:
		return false
	}
	return true
}

// abortInternal logs an unexpected error and hides it behind a 500.
func abortInternal(c *gin.Context, err error) {
	log.Errorf("unexpected error on %s %s: %v", c.Request.Method, c.FullPath(), err)
	abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
}
