package handlers

import (
	"context"
	"net/http"
	"time"

	"devlearn/backend/internal/models"
	"devlearn/backend/internal/serialize"
	"devlearn/backend/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateNoteRequest is the note creation payload. Content defaults to empty
// and language may be null; user_id is stored as given without checking it
// against the user collection.
type CreateNoteRequest struct {
	UserID   string  `json:"user_id" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content"`
	Language *string `json:"language"`
}

type NoteHandler struct {
	store store.Store
	log   *zap.Logger
}

func NewNoteHandler(s store.Store, log *zap.Logger) *NoteHandler {
	return &NoteHandler{store: s, log: log}
}

// CreateNote inserts the note and re-reads it by its new id, so the response
// is the store's canonical shape rather than an echo of the payload.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var payload CreateNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	note := models.Note{
		UserID:   payload.UserID,
		Title:    payload.Title,
		Content:  payload.Content,
		Language: payload.Language,
	}
	id, err := h.store.Insert(ctx, store.NoteCollection, note)
	if err != nil {
		respondStoreError(c, h.log, "note insert failed", err)
		return
	}

	saved, err := h.store.FindByID(ctx, store.NoteCollection, id)
	if err != nil {
		respondStoreError(c, h.log, "note read-after-write failed", err)
		return
	}

	c.JSON(http.StatusCreated, serialize.Document(saved))
}

// ListNotes returns up to 100 notes for the user in store-native order.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	docs, err := h.store.Find(ctx, store.NoteCollection, bson.M{"user_id": userID}, 100)
	if err != nil {
		respondStoreError(c, h.log, "note list failed", err)
		return
	}

	c.JSON(http.StatusOK, serialize.Documents(docs))
}
