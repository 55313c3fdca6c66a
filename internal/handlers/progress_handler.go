package handlers

import (
	"context"
	"net/http"
	"time"

	"devlearn/backend/internal/models"
	"devlearn/backend/internal/serialize"
	"devlearn/backend/internal/services"
	"devlearn/backend/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UpdateProgressRequest is the progress payload. Completed defaults to true
// when omitted.
type UpdateProgressRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Course    string `json:"course" binding:"required"`
	Lesson    string `json:"lesson" binding:"required"`
	Completed *bool  `json:"completed"`
}

type ProgressHandler struct {
	store store.Store
	log   *zap.Logger
}

func NewProgressHandler(s store.Store, log *zap.Logger) *ProgressHandler {
	return &ProgressHandler{store: s, log: log}
}

// UpdateProgress appends a new entry unconditionally. Repeating the same
// (user, course, lesson) tuple inserts another entry rather than touching an
// existing one; the per-user summary counts them all.
func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	var payload UpdateProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	completed := true
	if payload.Completed != nil {
		completed = *payload.Completed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entry := models.ProgressEntry{
		UserID:    payload.UserID,
		Course:    payload.Course,
		Lesson:    payload.Lesson,
		Completed: completed,
	}
	id, err := h.store.Insert(ctx, store.ProgressCollection, entry)
	if err != nil {
		respondStoreError(c, h.log, "progress insert failed", err)
		return
	}

	saved, err := h.store.FindByID(ctx, store.ProgressCollection, id)
	if err != nil {
		respondStoreError(c, h.log, "progress read-after-write failed", err)
		return
	}

	c.JSON(http.StatusCreated, serialize.Document(saved))
}

// GetProgress reads up to 500 entries for the user and derives the rank from
// the completed count.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID := c.Param("user_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	docs, err := h.store.Find(ctx, store.ProgressCollection, bson.M{"user_id": userID}, 500)
	if err != nil {
		respondStoreError(c, h.log, "progress list failed", err)
		return
	}

	completed := 0
	for _, d := range docs {
		if done, ok := d["completed"].(bool); ok && done {
			completed++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     serialize.Documents(docs),
		"completed": completed,
		"rank":      services.RankForCount(completed),
	})
}
