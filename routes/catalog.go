package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/Themorocd/ShopFast/controllers/catalog"
	productControllers "github.com/Themorocd/ShopFast/controllers/product"
	"github.com/Themorocd/ShopFast/middleware"
)

// SetupCatalogRoutes registers the public catalog surface. Listing is
// open; every mutation requires a valid token.
func SetupCatalogRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.POST("", middleware.ValidateToken, productControllers.CreateProduct(db))
		products.PUT("/:id", middleware.ValidateToken, productControllers.UpdateProduct(db))
		products.DELETE("/:id", middleware.ValidateToken, productControllers.DeleteProduct(db))
	}

	categories := api.Group("/categories")
	{
		categories.GET("", catalogControllers.GetCategories(db))
		categories.POST("", middleware.ValidateToken, catalogControllers.CreateCategory(db))
		categories.PUT("/:id", middleware.ValidateToken, catalogControllers.UpdateCategory(db))
		categories.DELETE("/:id", middleware.ValidateToken, catalogControllers.DeleteCategory(db))
	}

	providers := api.Group("/providers")
	{
		providers.GET("", catalogControllers.GetSuppliers(db))
		providers.POST("", middleware.ValidateToken, catalogControllers.CreateSupplier(db))
	}
}
