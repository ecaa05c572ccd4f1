package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/Themorocd/ShopFast/controllers/admin"
	"github.com/Themorocd/ShopFast/middleware"
)

// SetupAdminRoutes registers the admin-scoped catalog surface. Everything
// here needs a valid token carrying the admin role.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	admin := api.Group("/admin")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		products := admin.Group("/products")
		{
			products.GET("", adminControllers.ListProducts(db))
			products.POST("", adminControllers.CreateProduct(db))
			products.PUT("/:id", adminControllers.UpdateProduct(db))
			products.DELETE("/:id", adminControllers.DeleteProduct(db))
			products.GET("/export-excel", adminControllers.ExportProductsToExcel(db))
			products.POST("/import-excel", adminControllers.ImportProductsFromExcel(db))
		}

		categories := admin.Group("/categories")
		{
			categories.GET("", adminControllers.ListCategories(db))
			categories.POST("", adminControllers.CreateCategory(db))
			categories.PUT("/:id", adminControllers.UpdateCategory(db))
			categories.DELETE("/:id", adminControllers.DeleteCategory(db))
		}

		suppliers := admin.Group("/suppliers")
		{
			suppliers.GET("", adminControllers.ListSuppliers(db))
			suppliers.POST("", adminControllers.CreateSupplier(db))
			suppliers.PUT("/:id", adminControllers.UpdateSupplier(db))
			suppliers.DELETE("/:id", adminControllers.DeleteSupplier(db))
		}
	}
}
