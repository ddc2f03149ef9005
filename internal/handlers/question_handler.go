package handlers

import (
	"net/http"

	"assessment-service/internal/service"
	"github.com/gin-gonic/gin"
)

type QuestionHandler struct{}

func NewQuestionHandler() *QuestionHandler {
	return &QuestionHandler{}
}

// GetQuestions returns an inventory's question bank. Keying direction is not
// serialized; respondents only ever see id, text and tag.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	inventory := c.Param("inventory")
	bank, ok := service.QuestionBank(inventory)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown inventory", "code": "UNKNOWN_INVENTORY"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"inventory": inventory,
		"count":     len(bank),
		"questions": bank,
	})
}
