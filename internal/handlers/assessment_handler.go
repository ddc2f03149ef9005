package handlers

import (
	"context"
	"errors"
	"net/http"

	"assessment-service/internal/evaluation"
	"assessment-service/internal/models"
	"assessment-service/internal/service"
	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	Service *service.AssessmentService
}

func NewAssessmentHandler(s *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{Service: s}
}

func (h *AssessmentHandler) Evaluate(c *gin.Context) {
	inventory := c.Param("inventory")
	userID := c.GetHeader("X-User-ID")

	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Evaluate(context.Background(), userID, inventory, evaluation.Responses(req.Responses))
	if err != nil {
		if errors.Is(err, service.ErrUnknownInventory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "UNKNOWN_INVENTORY"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *AssessmentHandler) GetResult(c *gin.Context) {
	id := c.Param("id")
	result, err := h.Service.GetResult(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AssessmentHandler) GetResultsByUser(c *gin.Context) {
	userID := c.Param("id")
	inventory := c.Query("inventory")

	var (
		results []models.AssessmentResult
		err     error
	)
	if inventory != "" {
		results, err = h.Service.GetResultsByUserAndInventory(context.Background(), userID, inventory)
	} else {
		results, err = h.Service.GetResultsByUser(context.Background(), userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetSummary returns the prompt-ready text block for a stored result.
func (h *AssessmentHandler) GetSummary(c *gin.Context) {
	id := c.Param("id")
	result, err := h.Service.GetResult(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
		return
	}
	summary, err := service.BuildReportSummary(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result_id": result.ID,
		"inventory": result.Inventory,
		"summary":   summary,
	})
}
