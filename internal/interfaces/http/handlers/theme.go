// internal/interfaces/http/handlers/theme.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/primecart/internal/domain/theme"
)

// ThemeHandler handles the theme preference endpoints
type ThemeHandler struct {
	themeService *theme.Service
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(themeService *theme.Service) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

// SetThemeRequest represents a theme change request
type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// GetTheme handles GET /theme
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"theme": h.themeService.Current()},
	})
}

// SetTheme handles PUT /theme
func (h *ThemeHandler) SetTheme(c *gin.Context) {
	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.themeService.Set(req.Theme)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"theme": h.themeService.Current()},
	})
}

// Toggle handles POST /theme/toggle
func (h *ThemeHandler) Toggle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"theme": h.themeService.Toggle()},
	})
}
