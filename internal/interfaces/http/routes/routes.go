// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/primecart/internal/catalog"
	"github.com/your-org/primecart/internal/config"
	"github.com/your-org/primecart/internal/domain/browse"
	"github.com/your-org/primecart/internal/domain/cart"
	"github.com/your-org/primecart/internal/domain/checkout"
	"github.com/your-org/primecart/internal/domain/theme"
	"github.com/your-org/primecart/internal/domain/wishlist"
	"github.com/your-org/primecart/internal/interfaces/http/handlers"
)

// Stores bundles the application services. Each store is constructed once
// at startup and injected here by reference, so every surface observes the
// same state.
type Stores struct {
	Catalog  *catalog.Client
	Pipeline *browse.Pipeline
	Cart     *cart.Service
	Wishlist *wishlist.Service
	Checkout *checkout.Service
	Theme    *theme.Service
}

// SetupRoutes wires all storefront routes onto the router group
func SetupRoutes(rg *gin.RouterGroup, stores *Stores, cfg *config.Config) {
	setupProductRoutes(rg, stores, cfg)
	setupCartRoutes(rg, stores)
	setupWishlistRoutes(rg, stores)
	setupCheckoutRoutes(rg, stores)
	setupThemeRoutes(rg, stores)
	setupPageRoutes(rg)
}

func setupProductRoutes(rg *gin.RouterGroup, stores *Stores, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(stores.Catalog, stores.Pipeline, cfg)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/:id", productHandler.GetProduct)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, stores *Stores) {
	cartHandler := handlers.NewCartHandler(stores.Cart)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.Clear)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
	}
}

func setupWishlistRoutes(rg *gin.RouterGroup, stores *Stores) {
	wishlistHandler := handlers.NewWishlistHandler(stores.Wishlist)

	wishlistGroup := rg.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("/items", wishlistHandler.AddItem)
		wishlistGroup.DELETE("/items/:id", wishlistHandler.RemoveItem)
		wishlistGroup.POST("/toggle", wishlistHandler.Toggle)
	}
}

func setupCheckoutRoutes(rg *gin.RouterGroup, stores *Stores) {
	checkoutHandler := handlers.NewCheckoutHandler(stores.Checkout, stores.Cart)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.GET("", checkoutHandler.GetCheckout)
		checkoutGroup.POST("", checkoutHandler.Submit)
		checkoutGroup.POST("/reset", checkoutHandler.Reset)
	}
}

func setupThemeRoutes(rg *gin.RouterGroup, stores *Stores) {
	themeHandler := handlers.NewThemeHandler(stores.Theme)

	themeGroup := rg.Group("/theme")
	{
		themeGroup.GET("", themeHandler.GetTheme)
		themeGroup.PUT("", themeHandler.SetTheme)
		themeGroup.POST("/toggle", themeHandler.Toggle)
	}
}

func setupPageRoutes(rg *gin.RouterGroup) {
	pagesHandler := handlers.NewPagesHandler()

	rg.GET("/pages/:slug", pagesHandler.GetPage)
}
