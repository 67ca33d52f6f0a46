package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// defaultUserID is assumed when the request does not carry one.
const defaultUserID = "me"

// processRequest is the JSON body for POST /v1/expenses.
type processRequest struct {
	Text   string `json:"text"`
	UserID string `json:"user_id"`
}

func (s *Server) processExpense(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid JSON in request body",
			"details": err.Error(),
		})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Text field is required",
			"message": "Please provide expense text",
		})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = defaultUserID
	}

	response := s.agent.Process(c.Request.Context(), text, userID)
	c.JSON(http.StatusOK, response)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "budgetbuddy",
	})
}
