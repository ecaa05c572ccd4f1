package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/Themorocd/ShopFast/controllers/user"
	"github.com/Themorocd/ShopFast/mail"
	"github.com/Themorocd/ShopFast/middleware"
)

// SetupUserRoutes registers registration, login, email verification and
// the JWT-protected profile endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, mailer *mail.Mailer) {
	users := api.Group("/users")
	{
		users.POST("/register", userControllers.Register(db, mailer))
		users.POST("/login", userControllers.Login(db))
		users.GET("/verify/:token", userControllers.VerifyEmail(db))

		profile := users.Group("/profile")
		profile.Use(middleware.ValidateToken)
		{
			profile.GET("", userControllers.GetProfile(db))
			profile.PUT("", userControllers.UpdateProfile(db))
			profile.PUT("/image", userControllers.UpdateProfileImage(db))
		}
	}
}
