package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"devlearn/backend/internal/models"
	"devlearn/backend/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// SignupRequest is the signup payload. Provider defaults to "email".
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Provider string `json:"provider" binding:"omitempty,oneof=email google"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type AuthResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type AuthHandler struct {
	store store.Store
	log   *zap.Logger
}

func NewAuthHandler(s store.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{store: s, log: log}
}

// Signup creates a user for an unseen email, or returns the existing record
// unchanged (the submitted name and provider are discarded on a hit). The
// lookup and the insert are two independent store calls with no unique index
// behind them, so two concurrent signups for the same unseen email can both
// insert; that gap is accepted, not guarded against.
func (h *AuthHandler) Signup(c *gin.Context) {
	var payload SignupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}
	if payload.Provider == "" {
		payload.Provider = "email"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.store.FindOne(ctx, store.UserCollection, bson.M{"email": payload.Email})
	if err == nil {
		c.JSON(http.StatusOK, AuthResponse{
			UserID: idHex(existing["_id"]),
			Name:   stringField(existing, "name", payload.Name),
			Email:  payload.Email,
		})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		h.respondStoreError(c, "signup lookup failed", err)
		return
	}

	now := time.Now().UTC()
	user := models.User{
		Name:      payload.Name,
		Email:     payload.Email,
		Provider:  payload.Provider,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := h.store.Insert(ctx, store.UserCollection, user)
	if err != nil {
		h.respondStoreError(c, "signup insert failed", err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{UserID: id.Hex(), Name: payload.Name, Email: payload.Email})
}

// Login looks the user up by exact email. There is no credential check of
// any kind; this endpoint only resolves an email to a user id.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.store.FindOne(ctx, store.UserCollection, bson.M{"email": payload.Email})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found. Please sign up."})
			return
		}
		h.respondStoreError(c, "login lookup failed", err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		UserID: idHex(existing["_id"]),
		Name:   stringField(existing, "name", "User"),
		Email:  payload.Email,
	})
}

func (h *AuthHandler) respondStoreError(c *gin.Context, msg string, err error) {
	respondStoreError(c, h.log, msg, err)
}

func idHex(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

func stringField(doc bson.M, key, fallback string) string {
	if s, ok := doc[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
