// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/primecart/internal/catalog"
	"github.com/your-org/primecart/internal/config"
	"github.com/your-org/primecart/internal/domain/browse"
)

// ProductHandler handles product browsing endpoints
type ProductHandler struct {
	catalog  *catalog.Client
	pipeline *browse.Pipeline
	config   *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(client *catalog.Client, pipeline *browse.Pipeline, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		catalog:  client,
		pipeline: pipeline,
		config:   cfg,
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	query := browse.Query{
		Search:   strings.TrimSpace(c.Query("search")),
		Category: c.Query("category"),
		Sort:     c.DefaultQuery("sort", browse.SortDefault),
		Page:     1,
	}

	if pageParam := c.Query("page"); pageParam != "" {
		if page, err := strconv.Atoi(pageParam); err == nil {
			query.Page = page
		}
	}

	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	result := h.pipeline.Apply(products, query)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    result,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), id)
	if err != nil {
		// Only the detail fetch can interpret a catalog 404 as a missing
		// product.
		var catErr *catalog.Error
		if errors.As(err, &catErr) && catErr.Status == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		respondCatalogError(c, err)
		return
	}

	// Related products are non-critical: a failed fetch simply omits the
	// section.
	related := h.relatedProducts(c, product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data": gin.H{
			"product": product,
			"related": related,
		},
	})
}

// GetCategories handles GET /products/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

func (h *ProductHandler) relatedProducts(c *gin.Context, product *catalog.Product) []catalog.Product {
	related := []catalog.Product{}
	if product.Category == "" {
		return related
	}

	all, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		return related
	}

	for _, p := range all {
		if p.Category == product.Category && p.ID != product.ID {
			related = append(related, p)
			if len(related) == h.config.Store.RelatedLimit {
				break
			}
		}
	}

	return related
}

// respondCatalogError maps a catalog failure onto an HTTP response. The
// client can retry; nothing here is fatal to the rest of the application.
func respondCatalogError(c *gin.Context, err error) {
	c.JSON(http.StatusBadGateway, gin.H{
		"error":     err.Error(),
		"retryable": true,
	})
}
