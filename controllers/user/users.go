package userControllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Themorocd/ShopFast/mail"
	"github.com/Themorocd/ShopFast/middleware"
	"github.com/Themorocd/ShopFast/models"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// issueSessionToken signs the 2h login token carrying id and role.
func issueSessionToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(2 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// issueVerificationToken signs the 24h token embedded in the email link.
func issueVerificationToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func baseURL() string {
	if base := os.Getenv("APP_BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:8080"
}

// POST /api/users/register
func Register(db *gorm.DB, mailer *mail.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hashed),
			Role:     models.RoleCustomer,
			Verified: false,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// The verification email is best effort: the account exists either way.
		if token, err := issueVerificationToken(user.ID); err != nil {
			log.Printf("failed to sign verification token for %s: %v", user.Email, err)
		} else {
			link := baseURL() + "/api/users/verify/" + token
			if err := mailer.SendVerification(user.Email, user.Name, link); err != nil {
				log.Printf("failed to send verification email to %s: %v", user.Email, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "User registered. Check your inbox to verify your account.",
		})
	}
}

// GET /api/users/verify/:token
func VerifyEmail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Param("token")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			c.Data(http.StatusBadRequest, "text/html; charset=utf-8",
				[]byte("<h2>Invalid or expired verification link.</h2>"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Data(http.StatusBadRequest, "text/html; charset=utf-8",
				[]byte("<h2>Invalid or expired verification link.</h2>"))
			return
		}
		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.Data(http.StatusBadRequest, "text/html; charset=utf-8",
				[]byte("<h2>Invalid or expired verification link.</h2>"))
			return
		}

		var user models.User
		if err := db.First(&user, uint(userID)).Error; err != nil {
			c.Data(http.StatusBadRequest, "text/html; charset=utf-8",
				[]byte("<h2>User not found.</h2>"))
			return
		}

		user.Verified = true
		if err := db.Save(&user).Error; err != nil {
			c.Data(http.StatusInternalServerError, "text/html; charset=utf-8",
				[]byte("<h2>Could not verify the account. Try again later.</h2>"))
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte("<h2>Your account has been verified. You can now sign in.</h2>"))
	}
}

// POST /api/users/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect password"})
			return
		}

		if !user.Verified {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Verify your account before signing in"})
			return
		}

		token, err := issueSessionToken(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

// GET /api/users/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// PUT /api/users/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.Address != nil {
			updates["address"] = *input.Address
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
	}
}

// PUT /api/users/profile/image
func UpdateProfileImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		imagePath, err := middleware.SaveUploadedImage(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		user.Image = imagePath
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Profile image updated",
			"image":   imagePath,
		})
	}
}
