package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"devlearn/backend/internal/store"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store       store.Store
	dbName      string
	mongoURISet bool
}

func NewHealthHandler(s store.Store, dbName string, mongoURISet bool) *HealthHandler {
	return &HealthHandler{store: s, dbName: dbName, mongoURISet: mongoURISet}
}

// Root is the service banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "DevLearn Pro Backend running"})
}

// DBTest reports a connectivity snapshot. It always answers 200; degraded
// states are reported in the body so the endpoint stays usable exactly when
// things are broken.
func (h *HealthHandler) DBTest(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			resp["database"] = "⚠️ Available but not initialized"
		} else {
			resp["database"] = "❌ Error: " + truncate(err.Error(), 80)
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["database"] = "✅ Available"
	if h.mongoURISet {
		resp["database_url"] = "✅ Set"
	} else {
		resp["database_url"] = "❌ Not Set"
	}
	resp["database_name"] = h.dbName
	resp["connection_status"] = "Connected"

	names, err := h.store.Collections(ctx)
	if err != nil {
		resp["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
	} else {
		if len(names) > 10 {
			names = names[:10]
		}
		resp["collections"] = names
		resp["database"] = "✅ Connected & Working"
	}

	c.JSON(http.StatusOK, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
