// internal/interfaces/http/handlers/contact.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ContactHandler handles the contact form endpoint
type ContactHandler struct {
	logger *logrus.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{
		logger: logger,
	}
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact handles POST /contact
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
	}).Info("contact form submission received")

	c.JSON(http.StatusOK, gin.H{
		"message": "Thank you for your message! We will get back to you soon.",
	})
}
