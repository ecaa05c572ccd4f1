package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Themorocd/ShopFast/mail"
	"github.com/Themorocd/ShopFast/payments"
)

// SetupRoutes is the single entry point that wires every route group. The
// PayPal client and the mailer are constructed in main and passed through
// to the handlers that need them.
func SetupRoutes(r *gin.Engine, db *gorm.DB, pp *payments.PayPalClient, mailer *mail.Mailer) {
	api := r.Group("/api")

	SetupUserRoutes(api, db, mailer)
	SetupCatalogRoutes(api, db)
	SetupAdminRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupCheckoutRoutes(api, db)
	SetupOrderRoutes(api, db)
	SetupPaymentRoutes(api, db, pp, mailer)
}
