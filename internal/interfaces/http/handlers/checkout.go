// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/primecart/internal/domain/cart"
	"github.com/your-org/primecart/internal/domain/checkout"
)

// CheckoutHandler handles the checkout workflow endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	cartService     *cart.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, cartService *cart.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		cartService:     cartService,
	}
}

// GetCheckout handles GET /checkout
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout state retrieved successfully",
		"data": gin.H{
			"status": h.checkoutService.Status(),
			"totals": h.cartService.Totals(),
		},
	})
}

// Submit handles POST /checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if form.PaymentMethod == "" {
		form.PaymentMethod = checkout.PaymentCard
	}

	err := h.checkoutService.Submit(c.Request.Context(), form)
	if err != nil {
		var validationErr *checkout.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Form validation failed",
				"errors": validationErr.Fields,
			})
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Nothing to checkout",
			})
		case errors.Is(err, checkout.ErrNotEditing):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Checkout already in progress or completed",
			})
		default:
			// Context cancellation: the caller went away mid-processing.
			c.Status(http.StatusRequestTimeout)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data": gin.H{
			"status": h.checkoutService.Status(),
		},
	})
}

// Reset handles POST /checkout/reset
func (h *CheckoutHandler) Reset(c *gin.Context) {
	h.checkoutService.Reset()
	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout reset successfully",
		"data": gin.H{
			"status": h.checkoutService.Status(),
		},
	})
}
