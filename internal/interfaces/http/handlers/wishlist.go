// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/primecart/internal/catalog"
	"github.com/your-org/primecart/internal/domain/wishlist"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *wishlist.Service
}

// NewWishlistHandler creates a new wishlist handler around the shared store
func NewWishlistHandler(wishlistService *wishlist.Service) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// SaveProductRequest represents an add or toggle request
type SaveProductRequest struct {
	Product catalog.Product `json:"product" binding:"required"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	h.respondWithWishlist(c, "Wishlist retrieved successfully")
}

// AddItem handles POST /wishlist/items
func (h *WishlistHandler) AddItem(c *gin.Context) {
	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.wishlistService.Add(req.Product)
	h.respondWithWishlist(c, "Item added to wishlist successfully")
}

// RemoveItem handles DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	h.wishlistService.Remove(id)
	h.respondWithWishlist(c, "Item removed from wishlist successfully")
}

// Toggle handles POST /wishlist/toggle
func (h *WishlistHandler) Toggle(c *gin.Context) {
	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.wishlistService.Toggle(req.Product)
	h.respondWithWishlist(c, "Wishlist updated successfully")
}

func (h *WishlistHandler) respondWithWishlist(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"items": h.wishlistService.Items(),
			"count": h.wishlistService.Count(),
		},
	})
}
