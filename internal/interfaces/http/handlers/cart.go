// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/primecart/internal/catalog"
	"github.com/your-org/primecart/internal/domain/cart"
)

// CartHandler handles cart endpoints. The cart store is the single source
// of truth; the handler only translates HTTP to store operations.
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler around the shared cart store
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddItemRequest represents an add-to-cart request. The client supplies
// the full product: the catalog is remote and the cart owns its copy.
type AddItemRequest struct {
	Product  catalog.Product `json:"product" binding:"required"`
	Quantity int             `json:"quantity"`
}

// UpdateQuantityRequest represents a quantity change for one line
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	h.respondWithCart(c, "Cart retrieved successfully")
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.cartService.AddItem(req.Product, req.Quantity)
	h.respondWithCart(c, "Item added to cart successfully")
}

// UpdateQuantity handles PUT /cart/items/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.cartService.UpdateQuantity(id, *req.Quantity)
	h.respondWithCart(c, "Cart item updated successfully")
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	h.cartService.RemoveItem(id)
	h.respondWithCart(c, "Item removed from cart successfully")
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.Clear()
	h.respondWithCart(c, "Cart cleared successfully")
}

func (h *CartHandler) respondWithCart(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"items":  h.cartService.Items(),
			"totals": h.cartService.Totals(),
		},
	})
}
