package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checkoutControllers "github.com/Themorocd/ShopFast/controllers/checkout"
	"github.com/Themorocd/ShopFast/middleware"
)

// SetupCheckoutRoutes registers cart-to-order conversion and the payment
// confirmation endpoints, all behind JWT.
func SetupCheckoutRoutes(api *gin.RouterGroup, db *gorm.DB) {
	checkout := api.Group("/checkout")
	checkout.Use(middleware.ValidateToken)
	{
		checkout.POST("/start", checkoutControllers.StartCheckout(db))
		checkout.POST("/pay/mock/confirm", checkoutControllers.ConfirmMockPayment(db))
		checkout.POST("/paypal/create", checkoutControllers.CreatePayPalOrder())
		checkout.POST("/paypal/capture", checkoutControllers.CapturePayPalOrder(db))
	}
}
