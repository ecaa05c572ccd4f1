package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Themorocd/ShopFast/controllers/order"
	"github.com/Themorocd/ShopFast/middleware"
)

// SetupOrderRoutes registers direct order endpoints, all behind JWT.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("/simulated-pay", orderControllers.SimulatedPayHandler(db))
		orders.GET("/my", orderControllers.GetMyOrdersHandler(db))
	}
}
