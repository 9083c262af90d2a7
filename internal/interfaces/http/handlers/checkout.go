// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velvet-vogue/storefront-backend/internal/config"
	"github.com/velvet-vogue/storefront-backend/internal/domain/checkout"
	"github.com/velvet-vogue/storefront-backend/internal/pkg/payment"
	"github.com/velvet-vogue/storefront-backend/internal/pricing"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		config:          cfg,
	}
}

// ProcessCheckout handles POST /checkout
func (h *CheckoutHandler) ProcessCheckout(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), sessionID, &req)
	if err != nil {
		var validationErr *checkout.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Please fill in all required fields",
				"fields": validationErr.Fields,
			})
		case errors.Is(err, pricing.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, payment.ErrDeclined):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Payment failed. Please try again.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to process checkout",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": result.Message,
		"data":    result,
	})
}
