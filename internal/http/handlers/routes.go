package handlers

import (
	"github.com/Ndzin77/cardapiodigitalteste/internal/app"
	"github.com/Ndzin77/cardapiodigitalteste/internal/http/middleware"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	authHandler := NewAuthHandler(services.AuthService)
	storeHandler := NewStoreHandler(services.StoreService, services.StoreRepo)
	categoryHandler := NewCategoryHandler(services.CategoryService)
	productHandler := NewProductHandler(services.ProductRepo)
	cartHandler := NewCartHandler(services.CartService)

	// Auth routes (no authentication required)
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Public storefront routes, resolved by store tag
	store := api.Group("/store/:tag")
	store.Use(middleware.StoreTagMiddleware(services.DB))
	store.GET("", storeHandler.GetStorefront)
	store.GET("/status", storeHandler.GetStatus)
	store.GET("/opening-hours", storeHandler.GetOpeningHours)
	store.GET("/categories", categoryHandler.ListPublic)
	store.GET("/products", productHandler.ListPublic)
	store.GET("/products/search", productHandler.SearchPublic)
	store.GET("/products/:id", productHandler.GetPublicByID)
	store.POST("/carts", cartHandler.Create)
	store.GET("/carts/:id", cartHandler.GetByID)
	store.POST("/carts/:id/items", cartHandler.AddItem)
	store.PUT("/carts/:id/items/:item_id", cartHandler.UpdateItem)
	store.DELETE("/carts/:id/items/:item_id", cartHandler.RemoveItem)

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(services.AuthService))
	protected.Use(middleware.StoreAdminOrAbove())

	// Catalog management
	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.GET("/:id", categoryHandler.GetByID)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	products := protected.Group("/products")
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.GET("/:id", productHandler.GetByID)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// Store settings
	settings := protected.Group("/settings")
	settings.PUT("/store", storeHandler.UpdateStore)
	settings.PUT("/opening-hours", storeHandler.UpdateOpeningHours)
}
