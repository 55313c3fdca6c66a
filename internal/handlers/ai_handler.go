package handlers

import (
	"net/http"

	"devlearn/backend/internal/services"

	"github.com/gin-gonic/gin"
)

// MentorRequest carries the mentor question. Question is required by the
// contract but not inspected when building the answer; only language and
// level influence the output.
type MentorRequest struct {
	Question string  `json:"question" binding:"required"`
	Language *string `json:"language"`
	Level    string  `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
}

type ConvertRequest struct {
	SourceLanguage string `json:"source_language" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
	Code           string `json:"code" binding:"required"`
}

type AIHandler struct{}

func NewAIHandler() *AIHandler {
	return &AIHandler{}
}

// Mentor returns a canned tip set for the requested level and language.
func (h *AIHandler) Mentor(c *gin.Context) {
	var payload MentorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	language := ""
	if payload.Language != nil {
		language = *payload.Language
	}

	c.JSON(http.StatusOK, gin.H{"answer": services.MentorAnswer(language, payload.Level)})
}

// Convert runs the naive text-substitution converter.
func (h *AIHandler) Convert(c *gin.Context) {
	var payload ConvertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	converted, notes := services.ConvertCode(payload.SourceLanguage, payload.TargetLanguage, payload.Code)
	c.JSON(http.StatusOK, gin.H{"converted": converted, "notes": notes})
}
