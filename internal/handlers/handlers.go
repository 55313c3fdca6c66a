// Package handlers contains the HTTP handlers, one file per resource. Each
// handler gets its store and logger at construction time; nothing reaches
// for package-level state.
package handlers

import (
	"errors"
	"net/http"

	"devlearn/backend/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondStoreError maps store failures to a response: an unreachable
// database answers 503 instead of crashing or masquerading as a server bug,
// anything else is a plain 500.
func respondStoreError(c *gin.Context, log *zap.Logger, msg string, err error) {
	log.Error(msg, zap.Error(err))
	if errors.Is(err, store.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not available"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
