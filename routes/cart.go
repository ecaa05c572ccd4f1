package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Themorocd/ShopFast/controllers/cart"
	"github.com/Themorocd/ShopFast/middleware"
)

// SetupCartRoutes registers the per-user cart endpoints, all behind JWT.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("/items", cartControllers.AddItem(db))
		cart.PATCH("/items/:id", cartControllers.UpdateItem(db))
		cart.DELETE("/items/:id", cartControllers.RemoveItem(db))
		cart.DELETE("", cartControllers.ClearCart(db))
	}
}
