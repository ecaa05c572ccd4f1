package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/Themorocd/ShopFast/controllers/payment"
	"github.com/Themorocd/ShopFast/mail"
	"github.com/Themorocd/ShopFast/middleware"
	"github.com/Themorocd/ShopFast/payments"
)

// SetupPaymentRoutes registers the live PayPal sandbox adapter, behind JWT.
func SetupPaymentRoutes(api *gin.RouterGroup, db *gorm.DB, pp *payments.PayPalClient, mailer *mail.Mailer) {
	pay := api.Group("/payments")
	pay.Use(middleware.ValidateToken)
	{
		pay.POST("/paypal/create-order", paymentControllers.CreatePayPalOrder(pp))
		pay.POST("/paypal/capture", paymentControllers.CapturePayPalOrder(db, pp, mailer))
	}
}
